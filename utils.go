package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/veldrane/ioprio/ioprio"
	"github.com/veldrane/ioprio/proc"
)

const (
	exactArgs = iota
	minArgs
	maxArgs
)

func checkArgs(context *cli.Context, expected, checkType int) error {
	var err error
	cmdName := context.Command.Name
	switch checkType {
	case exactArgs:
		if context.NArg() != expected {
			err = fmt.Errorf("%s: %q requires exactly %d argument(s)", os.Args[0], cmdName, expected)
		}
	case minArgs:
		if context.NArg() < expected {
			err = fmt.Errorf("%s: %q requires a minimum of %d argument(s)", os.Args[0], cmdName, expected)
		}
	case maxArgs:
		if context.NArg() > expected {
			err = fmt.Errorf("%s: %q requires a maximum of %d argument(s)", os.Args[0], cmdName, expected)
		}
	}

	if err != nil {
		fmt.Printf("Incorrect Usage.\n\n")
		cli.ShowCommandHelp(context, cmdName)
		return err
	}
	return nil
}

func logrusToStderr() bool {
	l, ok := logrus.StandardLogger().Out.(*os.File)
	return ok && l.Fd() == os.Stderr.Fd()
}

// targetFlags are shared by the commands addressing existing processes.
var targetFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "pid, p",
		Usage: "target a single process (0 means the calling process)",
	},
	cli.IntFlag{
		Name:  "pgrp, g",
		Usage: "target a process group (0 means the caller's own group)",
	},
	cli.StringFlag{
		Name:  "user, u",
		Usage: "target all processes owned by a user, by name or uid",
	},
}

// parseTarget maps the --pid/--pgrp/--user flags onto a kernel target.
// With no selector given it falls back to the calling process, like
// ionice(1) does.
func parseTarget(context *cli.Context) (ioprio.Target, error) {
	selectors := 0
	for _, name := range []string{"pid", "pgrp", "user"} {
		if context.IsSet(name) {
			selectors++
		}
	}
	if selectors > 1 {
		return ioprio.Target{}, errors.New("at most one of --pid, --pgrp and --user may be given")
	}
	switch {
	case context.IsSet("pgrp"):
		return ioprio.ProcessGroup(context.Int("pgrp")), nil
	case context.IsSet("user"):
		uid, err := proc.LookupUID(context.String("user"))
		if err != nil {
			return ioprio.Target{}, err
		}
		return ioprio.User(uid), nil
	}
	return ioprio.Process(context.Int("pid")), nil
}

// parseKind maps a class name, or its numeric tag as accepted by
// ionice(1), onto the kernel class kind.
func parseKind(name string) (ioprio.Kind, error) {
	switch name {
	case "none", "0":
		return ioprio.KindNone, nil
	case "realtime", "rt", "1":
		return ioprio.KindRealtime, nil
	case "best-effort", "be", "2":
		return ioprio.KindBestEffort, nil
	case "idle", "3":
		return ioprio.KindIdle, nil
	}
	return ioprio.KindNone, errors.Errorf("unknown scheduling class %q", name)
}

// buildPriority assembles the priority mask for a class name and level. A
// level of -1 picks the class default: the best-effort fallback level for
// realtime and best-effort, nothing for none and idle, which carry no
// level at all.
func buildPriority(class string, level int) (ioprio.Priority, error) {
	kind, err := parseKind(class)
	if err != nil {
		return ioprio.Priority{}, err
	}
	switch kind {
	case ioprio.KindNone:
		if level >= 0 {
			return ioprio.Priority{}, errors.New("the none class carries no level")
		}
		return ioprio.Standard(), nil
	case ioprio.KindIdle:
		if level >= 0 {
			return ioprio.Priority{}, errors.New("the idle class carries no level")
		}
		return ioprio.New(ioprio.Idle()), nil
	case ioprio.KindRealtime:
		if level < 0 {
			level = ioprio.FallbackBestEffortLevel().Level()
		}
		l, ok := ioprio.NewRealtimeLevel(level)
		if !ok {
			return ioprio.Priority{}, errors.Errorf("realtime level %d out of range 0-7", level)
		}
		return ioprio.New(ioprio.Realtime(l)), nil
	}
	if level < 0 {
		level = ioprio.FallbackBestEffortLevel().Level()
	}
	l, ok := ioprio.NewBestEffortLevel(level)
	if !ok {
		return ioprio.Priority{}, errors.Errorf("best-effort level %d out of range 0-7", level)
	}
	return ioprio.New(ioprio.BestEffort(l)), nil
}
