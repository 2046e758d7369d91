// +build linux

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/veldrane/ioprio/ioprio"
)

var setCommand = cli.Command{
	Name:  "set",
	Usage: "assign an I/O scheduling class and priority to a target",
	ArgsUsage: `

Assigns the given class and level to a single process (--pid), a process
group (--pgrp) or all processes of a user (--user). Without a selector the
calling process is modified.

The realtime class requires CAP_SYS_ADMIN, and modifying processes of
other users requires matching credentials or CAP_SYS_NICE; the kernel
refuses with "operation not permitted" otherwise.

EXAMPLE:
To move pid 1234 to the idle class:

       # ioprio set -p 1234 -c idle`,
	Flags: append([]cli.Flag{
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
	}, targetFlags...),
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 0, exactArgs); err != nil {
			return err
		}
		target, err := parseTarget(context)
		if err != nil {
			return err
		}
		priority, err := buildPriority(context.String("class"), context.Int("level"))
		if err != nil {
			return err
		}
		if err := ioprio.Set(target, priority); err != nil {
			return fmt.Errorf("set priority of %v: %v", target, err)
		}
		logrus.Debugf("set %v to %v", target, priority)
		return nil
	},
	SkipArgReorder: true,
}
