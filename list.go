// +build linux

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/veldrane/ioprio/ioprio"
	"github.com/veldrane/ioprio/proc"
)

const formatOptions = `table or json`

// processPriority is one row of the listing: the procfs view of a process
// plus its current I/O priority.
type processPriority struct {
	proc.Process
	// Priority is the decoded class and level, or the hex mask when the
	// kernel reports bits that decode to no class.
	Priority string `json:"priority"`
	// Mask is the raw 16-bit priority mask.
	Mask uint16 `json:"mask"`
}

var listCommand = cli.Command{
	Name:  "list",
	Usage: "list processes together with their I/O scheduling priorities",
	ArgsUsage: `

Scans procfs (see the global --proc option) and prints every process with
its current I/O priority. The listing can be narrowed to one process group
(--pgrp) or one user (--user).

EXAMPLE 1:
To list all processes of the current user by name:

       # ioprio list -u $USER

EXAMPLE 2:
To list process group 4321 as JSON:

       # ioprio list -g 4321 --format json`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "format, f",
			Value: "table",
			Usage: `select one of: ` + formatOptions,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "display only pids",
		},
		cli.IntFlag{
			Name:  "pgrp, g",
			Usage: "only list processes of this process group",
		},
		cli.StringFlag{
			Name:  "user, u",
			Usage: "only list processes owned by this user, by name or uid",
		},
	},
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 0, exactArgs); err != nil {
			return err
		}
		s, err := listProcesses(context)
		if err != nil {
			return err
		}

		if context.Bool("quiet") {
			for _, item := range s {
				fmt.Println(item.Pid)
			}
			return nil
		}

		switch context.String("format") {
		case "table":
			w := tabwriter.NewWriter(os.Stdout, 12, 1, 3, ' ', 0)
			fmt.Fprint(w, "PID\tPGRP\tUID\tCOMM\tPRIORITY\n")
			for _, item := range s {
				fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n",
					item.Pid,
					item.PGid,
					item.Uid,
					item.Comm,
					item.Priority)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		case "json":
			if err := json.NewEncoder(os.Stdout).Encode(s); err != nil {
				return err
			}
		default:
			return errors.New("invalid format option")
		}
		return nil
	},
	SkipArgReorder: true,
}

func listProcesses(context *cli.Context) ([]processPriority, error) {
	procs, err := proc.List(context.GlobalString("proc"))
	if err != nil {
		return nil, err
	}

	uid := -1
	if context.IsSet("user") {
		if uid, err = proc.LookupUID(context.String("user")); err != nil {
			return nil, err
		}
	}

	var s []processPriority
	for _, item := range procs {
		if context.IsSet("pgrp") && item.PGid != context.Int("pgrp") {
			continue
		}
		if uid >= 0 && item.Uid != uid {
			continue
		}
		priority, err := ioprio.Get(ioprio.Process(item.Pid))
		if err != nil {
			// the process may be gone, or owned by someone else
			fmt.Fprintf(os.Stderr, "priority of %d: %v\n", item.Pid, err)
			continue
		}
		s = append(s, processPriority{
			Process:  item,
			Priority: priority.String(),
			Mask:     priority.Inner(),
		})
	}
	return s, nil
}
