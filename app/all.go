package app

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func AppCommands() []*commander.Command {
	return []*commander.Command{
		SplitCmd(),
		AuditCmd(),
		TSVCmd(),
		LangsCmd(),
	}
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0] + " <command> [options]",
		Short:       "lemma-disjoint splits of SIGMORPHON inflection data",
		Subcommands: AppCommands(),
		Flag:        *flag.NewFlagSet("morphsplit", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.BoolVar(&quiet, "q", false, "Suppress logging")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	if quiet {
		allOut = false
		log.SetOutput(io.Discard)
	}
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		startTime := time.Now()
		err := f(cmd, args)
		if allOut {
			log.Println(strings.ToUpper(cmd.Name()), "Total Time:", time.Since(startTime))
		}
		return err
	}
	return wrapped
}
