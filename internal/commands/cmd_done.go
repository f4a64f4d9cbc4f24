package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/printer"
	"github.com/colonyops/tada/internal/tada"
)

type DoneCmd struct {
	flags *Flags
	app   *tada.App

	list    listOptions
	output  outputOptions
	confirm confirmOptions
	noDate  bool
}

// NewDoneCmd creates a new done command
func NewDoneCmd(flags *Flags, app *tada.App) *DoneCmd {
	return &DoneCmd{flags: flags, app: app}
}

// Register adds the done command to the application
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-date",
			Aliases:     []string{"nodate"},
			Usage:       "don't automatically add a completion date to the task",
			Destination: &cmd.noDate,
		},
	}
	flags = append(flags, cmd.confirm.flags()...)
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.flags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "done",
		Usage:     "Mark tasks as complete",
		UsageText: "tada done [options] TERM...",
		Description: `Marks incomplete tasks matching any of the search terms as complete. Each
match is shown and confirmed unless --yes or --no is given.

Completed tasks get today's date as their completion date unless --no-date is
given. Use 'tada archive' to move them to the done list.`,
		Flags:         flags,
		ShellComplete: TermCompleter(cmd.app, &cmd.list),
		Action:        cmd.run,
	})

	return app
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "done")

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

	out, n, err := cmd.app.Lists.MarkDone(ctx, loc, terms, !cmd.noDate, cmd.confirm.confirm())
	if err != nil {
		return err
	}

	if n > 0 {
		p.Successf("Marked %d tasks complete!", n)
	} else {
		p.Infof("No actions taken.")
	}

	housekeeping(p, out, cmd.app.Config)
	return nil
}
