package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/list"
	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/tada"
)

// TopCmd shows the first few actionable tasks by one ranking. It backs the
// important, urgent and quick commands.
type TopCmd struct {
	flags *Flags
	app   *tada.App

	name        string
	aliases     []string
	usage       string
	description string
	rank        list.SortOrder

	list   listOptions
	output outputOptions
	sort   string
	number int
}

// NewImportantCmd creates the important command
func NewImportantCmd(flags *Flags, app *tada.App) *TopCmd {
	return &TopCmd{
		flags: flags,
		app:   app,
		name:  "important",
		usage: "Show the most important tasks",
		description: `Shows the most important incomplete tasks. Tasks with a start date in the
future are skipped.`,
		rank: list.SortImportance,
	}
}

// NewUrgentCmd creates the urgent command
func NewUrgentCmd(flags *Flags, app *tada.App) *TopCmd {
	return &TopCmd{
		flags:   flags,
		app:     app,
		name:    "urgent",
		aliases: []string{"u"},
		usage:   "Show the most urgent tasks",
		description: `Shows the incomplete tasks with the nearest due dates. Tasks with a start
date in the future are skipped.`,
		rank: list.SortUrgency,
	}
}

// NewQuickCmd creates the quick command
func NewQuickCmd(flags *Flags, app *tada.App) *TopCmd {
	return &TopCmd{
		flags:   flags,
		app:     app,
		name:    "quick",
		aliases: []string{"q"},
		usage:   "Show the smallest tasks",
		description: `Shows the incomplete tasks that should be quickest to finish. Tasks with a
start date in the future are skipped.`,
		rank: list.SortSize,
	}
}

// Register adds the command to the application
func (cmd *TopCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{
		sortFlag(&cmd.sort, cmd.rank),
		&cli.IntFlag{
			Name:        "number",
			Aliases:     []string{"n"},
			Usage:       "maximum number of tasks to show",
			Value:       3,
			Destination: &cmd.number,
		},
	}
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.flags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:        cmd.name,
		Aliases:     cmd.aliases,
		Usage:       cmd.usage,
		UsageText:   "tada " + cmd.name + " [options]",
		Description: cmd.description,
		Flags:       flags,
		Action:      cmd.run,
	})

	return app
}

func (cmd *TopCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, cmd.name)

	order, err := list.ParseSortOrder(cmd.sort)
	if err != nil {
		return err
	}

	loc, err := cmd.list.todo(cmd.app)
	if err != nil {
		return err
	}
	ctx = logging.WithList(ctx, loc)

	lst, err := cmd.app.Lists.Load(ctx, loc)
	if err != nil {
		return err
	}

	p, err := cmd.output.printer(c, cmd.app.Config)
	if err != nil {
		return err
	}
	p.SetLineDigits(lst.LineNumberDigits())

	for _, it := range order.Sort(tada.Select(lst.Items(), cmd.rank, cmd.number)) {
		p.Item(it)
	}
	return nil
}
