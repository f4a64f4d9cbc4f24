package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/tada"
)

type ZenCmd struct {
	flags *Flags
	app   *tada.App

	list   listOptions
	output outputOptions
}

// NewZenCmd creates a new zen command
func NewZenCmd(flags *Flags, app *tada.App) *ZenCmd {
	return &ZenCmd{flags: flags, app: app}
}

// Register adds the zen command to the application
func (cmd *ZenCmd) Register(app *cli.Command) *cli.Command {
	var flags []cli.Flag
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.minimalFlags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "zen",
		Usage:     "Automatically reschedule overdue tasks",
		UsageText: "tada zen [options]",
		Description: `Zen will reschedule any overdue tasks on your todo list. It does not consult
you to ask for a new due date, but guesses when a sensible due date might be:
important small tasks are due soon, tasks that are important or small are due
next week, and everything else is due next month.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *ZenCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "zen")

	loc, err := cmd.list.todo(cmd.app)
	if err != nil {
		return err
	}
	ctx = logging.WithList(ctx, loc)

	p, err := cmd.output.printer(c, cmd.app.Config)
	if err != nil {
		return err
	}

	if _, err := cmd.app.Lists.Zen(ctx, loc); err != nil {
		return err
	}

	p.Infof("%s", tada.ZenQuote())
	return nil
}
