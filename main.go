package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const usage = `get and set the I/O scheduling class and priority of processes

ioprio reads and writes the Linux I/O priority mask through the
ioprio_get(2) and ioprio_set(2) system calls. The target is a single
process, a process group, or every process owned by a user. Priorities
only take effect under I/O schedulers that honor them, such as BFQ.`

func main() {
	app := cli.NewApp()
	app.Name = "ioprio"
	app.Usage = usage
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug output for logging",
		},
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "set the log file path where internal debug information is written",
		},
		cli.StringFlag{
			Name:  "log-format",
			Value: "text",
			Usage: "set the format used by logs ('text' (default), or 'json')",
		},
		cli.StringFlag{
			Name:  "proc",
			Value: "/proc",
			Usage: "root of the procfs mount used to inspect processes",
		},
	}
	app.Commands = []cli.Command{
		getCommand,
		setCommand,
		runCommand,
		listCommand,
	}
	app.Before = func(context *cli.Context) error {
		if context.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if path := context.GlobalString("log"); path != "" {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_SYNC, 0666)
			if err != nil {
				return err
			}
			logrus.SetOutput(f)
		}
		switch context.GlobalString("log-format") {
		case "text":
			// retain logrus's default text formatter
		case "json":
			logrus.SetFormatter(new(logrus.JSONFormatter))
		default:
			return fmt.Errorf("unknown log-format %q", context.GlobalString("log-format"))
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	// make sure the error is written to the logger
	logrus.Error(err)
	if !logrusToStderr() {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
