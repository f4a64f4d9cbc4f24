package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/printer"
	"github.com/colonyops/tada/internal/tada"
)

type RemoveCmd struct {
	flags *Flags
	app   *tada.App

	list    listOptions
	output  outputOptions
	confirm confirmOptions
}

// NewRemoveCmd creates a new remove command
func NewRemoveCmd(flags *Flags, app *tada.App) *RemoveCmd {
	return &RemoveCmd{flags: flags, app: app}
}

// Register adds the remove command to the application
func (cmd *RemoveCmd) Register(app *cli.Command) *cli.Command {
	var flags []cli.Flag
	flags = append(flags, cmd.confirm.flags()...)
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.flags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Remove tasks from the todo list",
		UsageText: "tada remove [options] TERM...",
		Description: `Removes tasks matching any of the search terms. Removed tasks are replaced
by blank lines so the line numbers of other tasks don't change; run
'tada tidy' to clean them up.`,
		Flags:         flags,
		ShellComplete: TermCompleter(cmd.app, &cmd.list),
		Action:        cmd.run,
	})

	return app
}

func (cmd *RemoveCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "remove")

	terms, err := searchTerms(c)
	if err != nil {
		return err
	}

	loc, err := cmd.list.todo(cmd.app)
	if err != nil {
		return err
	}
	ctx = logging.WithList(ctx, loc)

	p, err := cmd.output.printer(c, cmd.app.Config)
	if err != nil {
		return err
	}
	ctx = printer.NewContext(ctx, p)

	_, n, err := cmd.app.Lists.Remove(ctx, loc, terms, cmd.confirm.confirm())
	if err != nil {
		return err
	}

	if n > 0 {
		p.Successf("Removed %d tasks!", n)
	} else {
		p.Infof("No actions taken.")
	}
	return nil
}
