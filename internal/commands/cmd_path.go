package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/store"
	"github.com/colonyops/tada/internal/tada"
)

type PathCmd struct {
	flags *Flags
	app   *tada.App

	list   doneOptions
	done   bool
	config bool
}

// NewPathCmd creates a new path command
func NewPathCmd(flags *Flags, app *tada.App) *PathCmd {
	return &PathCmd{flags: flags, app: app}
}

// Register adds the path command to the application
func (cmd *PathCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "done",
			Usage:       "print the path to the done list instead",
			Destination: &cmd.done,
		},
		&cli.BoolFlag{
			Name:        "config",
			Usage:       "print the path to the config file instead",
			Destination: &cmd.config,
		},
	}
	flags = append(flags, cmd.list.flags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "path",
		Usage:     "Prints the full path to your todo list",
		UsageText: "tada path [options]",
		Description: `Prints the resolved location of the todo list, which can be handy for
scripts: cp "$(tada path)" backup.txt`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *PathCmd) run(_ context.Context, c *cli.Command) error {
	var (
		loc string
		err error
	)
	switch {
	case cmd.config:
		loc = cmd.flags.ConfigPath
	case cmd.done:
		loc, err = cmd.list.done(cmd.app)
	default:
		loc, err = cmd.list.todo(cmd.app)
	}
	if err != nil {
		return err
	}

	resolved, err := store.Resolve(loc)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, resolved)
	return err
}
