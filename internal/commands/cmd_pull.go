package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/printer"
	"github.com/colonyops/tada/internal/tada"
)

type PullCmd struct {
	flags *Flags
	app   *tada.App

	list    listOptions
	output  outputOptions
	confirm confirmOptions
	urgency urgencyOptions
}

// NewPullCmd creates a new pull command
func NewPullCmd(flags *Flags, app *tada.App) *PullCmd {
	return &PullCmd{flags: flags, app: app}
}

// Register adds the pull command to the application
func (cmd *PullCmd) Register(app *cli.Command) *cli.Command {
	var flags []cli.Flag
	flags = append(flags, cmd.urgency.flags()...)
	flags = append(flags, cmd.confirm.flags()...)
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.flags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "pull",
		Usage:     "Reschedule tasks to be due sooner",
		UsageText: "tada pull [options] TERM...",
		Description: `Reschedules incomplete tasks matching any of the search terms. The due date
becomes today unless --soon, --next-week or --next-month is given, and any
start date is moved to today so the task can be picked up straight away.`,
		Flags:         flags,
		ShellComplete: TermCompleter(cmd.app, &cmd.list),
		Action:        cmd.run,
	})

	return app
}

func (cmd *PullCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "pull")

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

	u := cmd.urgency.urgency(item.Today)
	out, n, err := cmd.app.Lists.Pull(ctx, loc, terms, u, cmd.confirm.confirm())
	if err != nil {
		return err
	}

	if n > 0 {
		p.Successf("Rescheduled %d tasks!", n)
	} else {
		p.Infof("No actions taken.")
	}

	housekeeping(p, out, cmd.app.Config)
	return nil
}
