package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/list"
	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/tada"
)

type TidyCmd struct {
	flags *Flags
	app   *tada.App

	list   listOptions
	output outputOptions
	sort   string
}

// NewTidyCmd creates a new tidy command
func NewTidyCmd(flags *Flags, app *tada.App) *TidyCmd {
	return &TidyCmd{flags: flags, app: app}
}

// Register adds the tidy command to the application
func (cmd *TidyCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{sortFlag(&cmd.sort, list.SortOriginal)}
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.minimalFlags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tidy",
		Usage:     "Remove blank lines and comments, optionally sorting the list",
		UsageText: "tada tidy [options]",
		Description: `Rewrites the todo list without blank or comment lines. Tasks keep their
order unless --sort is given. Line numbers change after tidying.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *TidyCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "tidy")

	order, err := list.ParseSortOrder(cmd.sort)
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

	dropped, err := cmd.app.Lists.Tidy(ctx, loc, order)
	if err != nil {
		return err
	}

	p.Successf("Removed %d blank/comment lines.", dropped)
	return nil
}
