// +build linux

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/veldrane/ioprio/ioprio"
)

var getCommand = cli.Command{
	Name:  "get",
	Usage: "read the I/O scheduling class and priority of a target",
	ArgsUsage: `

Reads the priority of a single process (--pid), a process group (--pgrp)
or all processes of a user (--user). Without a selector the calling
process is queried. When the target matches several processes, the kernel
reports the highest priority among them.

EXAMPLE:
To print the class and level of pid 1234:

       # ioprio get -p 1234
       best-effort/4`,
	Flags: append([]cli.Flag{
		cli.BoolFlag{
			Name:  "raw",
			Usage: "print the raw 16-bit priority mask instead of the class name",
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
		priority, err := ioprio.Get(target)
		if err != nil {
			return fmt.Errorf("get priority of %v: %v", target, err)
		}
		if context.Bool("raw") {
			fmt.Printf("%#04x\n", priority.Inner())
			return nil
		}
		fmt.Println(priority)
		return nil
	},
	SkipArgReorder: true,
}
