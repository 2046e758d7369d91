package proc

import (
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/opencontainers/runc/libcontainer/user"
	"github.com/pkg/errors"
)

// DefaultRoot is where procfs is normally mounted.
const DefaultRoot = "/proc"

// Process is what a procfs scan reports about one process.
type Process struct {
	// Pid is the process id.
	Pid int `json:"pid"`
	// PGid is the id of the process group the process belongs to.
	PGid int `json:"pgid"`
	// Uid is the real user id owning the process.
	Uid int `json:"uid"`
	// Comm is the command name, without arguments, truncated by the
	// kernel to 15 characters.
	Comm string `json:"comm"`
}

// List scans the procfs mounted at root and returns one entry per process.
// Entries that disappear or become unreadable during the scan are skipped,
// as processes exit while the directory is being walked. An empty root
// means DefaultRoot.
func List(root string) ([]Process, error) {
	if root == "" {
		root = DefaultRoot
	}
	list, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", root)
	}
	var procs []Process
	for _, item := range list {
		if !item.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(item.Name())
		if err != nil {
			// not a pid directory (self, sys, ...)
			continue
		}
		p, err := read(root, pid)
		if err != nil {
			continue
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// Read returns the procfs entry of a single process. A pid of zero means
// the calling process.
func Read(root string, pid int) (Process, error) {
	if root == "" {
		root = DefaultRoot
	}
	if pid == 0 {
		data, err := readProcFile(root, "self", "stat")
		if err != nil {
			return Process{}, err
		}
		fields := strings.Fields(data)
		if len(fields) == 0 {
			return Process{}, errors.Errorf("malformed stat for %s/self", root)
		}
		if pid, err = strconv.Atoi(fields[0]); err != nil {
			return Process{}, errors.Wrapf(err, "parse pid from %s/self/stat", root)
		}
	}
	return read(root, pid)
}

func read(root string, pid int) (Process, error) {
	p := Process{Pid: pid}

	stat, err := readProcFile(root, strconv.Itoa(pid), "stat")
	if err != nil {
		return Process{}, err
	}
	// pid (comm) state ppid pgrp ... — comm may itself contain spaces
	// and parentheses, so split at the last closing one.
	end := strings.LastIndex(stat, ")")
	begin := strings.Index(stat, "(")
	if begin < 0 || end < begin {
		return Process{}, errors.Errorf("malformed stat for pid %d", pid)
	}
	p.Comm = stat[begin+1 : end]
	fields := strings.Fields(stat[end+1:])
	if len(fields) < 3 {
		return Process{}, errors.Errorf("malformed stat for pid %d", pid)
	}
	if p.PGid, err = strconv.Atoi(fields[2]); err != nil {
		return Process{}, errors.Wrapf(err, "parse pgrp of pid %d", pid)
	}

	status, err := readProcFile(root, strconv.Itoa(pid), "status")
	if err != nil {
		return Process{}, err
	}
	uid := -1
	for _, line := range strings.Split(status, "\n") {
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		if uid, err = strconv.Atoi(fields[1]); err != nil {
			return Process{}, errors.Wrapf(err, "parse uid of pid %d", pid)
		}
		break
	}
	if uid < 0 {
		return Process{}, errors.Errorf("no Uid line in status of pid %d", pid)
	}
	p.Uid = uid
	return p, nil
}

func readProcFile(root string, elem ...string) (string, error) {
	path, err := securejoin.SecureJoin(root, filepath.Join(elem...))
	if err != nil {
		return "", err
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LookupUID resolves a user name to its numeric id through the system
// passwd database. Plain numeric input is passed through as-is, so callers
// can accept either form.
func LookupUID(name string) (int, error) {
	if uid, err := strconv.Atoi(name); err == nil {
		return uid, nil
	}
	u, err := user.LookupUser(name)
	if err != nil {
		return -1, errors.Wrapf(err, "lookup user %q", name)
	}
	return u.Uid, nil
}
