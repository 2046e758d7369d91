// +build linux

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/sys/unix"

	"github.com/veldrane/ioprio/ioprio"
)

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "run a command with the given I/O scheduling class and priority",
	ArgsUsage: `<command> [args...]

Where "<command>" is the program to execute. The priority is assigned to
the calling process, which then replaces itself with the command, so the
whole process tree started by it inherits the priority.

EXAMPLE:
To run a backup that only does I/O when the disk is otherwise idle:

       # ioprio run -c idle -- tar czf backup.tar.gz /home`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "class, c",
			Value: "best-effort",
			Usage: "scheduling class: none, realtime, best-effort or idle",
		},
		cli.IntFlag{
			Name:  "level, n",
			Value: -1,
			Usage: "level within the class, 0 (highest) through 7 (lowest)",
		},
	},
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, minArgs); err != nil {
			return err
		}
		priority, err := buildPriority(context.String("class"), context.Int("level"))
		if err != nil {
			return err
		}
		if err := ioprio.Set(ioprio.Process(0), priority); err != nil {
			return fmt.Errorf("set own priority: %v", err)
		}
		args := []string(context.Args())
		path, err := exec.LookPath(args[0])
		if err != nil {
			return errors.Wrapf(err, "look up %s", args[0])
		}
		logrus.Debugf("exec %s with priority %v", path, priority)
		if err := unix.Exec(path, args, os.Environ()); err != nil {
			return errors.Wrapf(err, "exec %s", path)
		}
		return nil
	},
	SkipArgReorder: true,
}
