package ioprio

import "fmt"

// The IOPRIO_WHO_* selectors from linux/ioprio.h.
const (
	whoProcess = iota + 1
	whoPGRP
	whoUser
)

// Target selects the processes an operation applies to: a single process,
// a process group, or every process owned by a user. No validation happens
// on construction; the kernel alone decides whether the id names anything.
type Target struct {
	who int
	id  int
}

// Process targets a single process. A pid of zero means the calling
// process. (IOPRIO_WHO_PROCESS.)
func Process(pid int) Target {
	return Target{who: whoProcess, id: pid}
}

// ProcessGroup targets a process group. A pgid of zero means the process
// group the caller belongs to. (IOPRIO_WHO_PGRP.)
func ProcessGroup(pgid int) Target {
	return Target{who: whoPGRP, id: pgid}
}

// User targets all processes owned by the user with the given uid.
// (IOPRIO_WHO_USER.)
func User(uid int) Target {
	return Target{who: whoUser, id: uid}
}

func (t Target) String() string {
	switch t.who {
	case whoProcess:
		return fmt.Sprintf("process %d", t.id)
	case whoPGRP:
		return fmt.Sprintf("process group %d", t.id)
	case whoUser:
		return fmt.Sprintf("user %d", t.id)
	}
	return fmt.Sprintf("target %d/%d", t.who, t.id)
}
