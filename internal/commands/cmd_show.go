package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/list"
	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/tada"
)

type ShowCmd struct {
	flags *Flags
	app   *tada.App

	list   listOptions
	output outputOptions

	sort       string
	urgency    bool
	importance bool
	size       bool
	jsonOutput bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags, app *tada.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{
		sortFlag(&cmd.sort, list.SortSmart),
		&cli.BoolFlag{
			Name:        "urgency",
			Aliases:     []string{"u"},
			Usage:       "group by urgency",
			Destination: &cmd.urgency,
		},
		&cli.BoolFlag{
			Name:        "importance",
			Aliases:     []string{"i"},
			Usage:       "group by importance",
			Destination: &cmd.importance,
		},
		&cli.BoolFlag{
			Name:        "size",
			Aliases:     []string{"z"},
			Usage:       "group by tshirt size",
			Destination: &cmd.size,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output as JSON lines",
			Destination: &cmd.jsonOutput,
		},
	}
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.flags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show the full todo list",
		UsageText: "tada show [options]",
		Description: `Shows every task on the todo list, optionally grouped under headings by
urgency, importance, or size. Within each group tasks are ordered by --sort.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) groupBy() list.GroupBy {
	switch {
	case cmd.urgency:
		return list.GroupUrgency
	case cmd.importance:
		return list.GroupImportance
	case cmd.size:
		return list.GroupSize
	default:
		return list.GroupNone
	}
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "show")

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
		if cmd.jsonOutput {
			return writeErrorJSON(c.Root().Writer, err, loc)
		}
		return err
	}

	if cmd.jsonOutput {
		if err := writeTasksJSON(c.Root().Writer, order.Sort(lst.Items())); err != nil {
			return fmt.Errorf("encode tasks: %w", err)
		}
		return nil
	}

	p, err := cmd.output.printer(c, cmd.app.Config)
	if err != nil {
		return err
	}
	p.SetLineDigits(lst.LineNumberDigits())

	by := cmd.groupBy()
	for _, g := range list.Groups(lst.Items(), by) {
		if by != list.GroupNone {
			p.Heading(g.Heading)
		}
		for _, it := range order.Sort(g.Items) {
			p.Item(it)
		}
		if by != list.GroupNone {
			p.Separator()
		}
	}

	housekeeping(p, lst, cmd.app.Config)
	return nil
}
