package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/tada"
)

type AddCmd struct {
	flags *Flags
	app   *tada.App

	list    listOptions
	output  outputOptions
	urgency urgencyOptions

	noDate  bool
	noFixup bool
	quiet   bool
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags, app *tada.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-date",
			Aliases:     []string{"nodate"},
			Usage:       "don't automatically add a creation date to the task",
			Destination: &cmd.noDate,
		},
		&cli.BoolFlag{
			Name:        "no-fixup",
			Aliases:     []string{"nofixup"},
			Usage:       "don't try to fix task syntax",
			Destination: &cmd.noFixup,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "quieter output",
			Destination: &cmd.quiet,
		},
	}
	flags = append(flags, cmd.urgency.flags()...)
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.flags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a task to the todo list",
		UsageText: "tada add [options] TASK",
		Description: `Adds a task to the end of the todo list.

The current date is set as the creation date unless the task already has one
or --no-date is given. Loosely written due: and start: dates such as
"due:next_friday" are rewritten to YYYY-MM-DD, and hints are printed for
anything worth adding. Use --no-fixup to store the task exactly as typed.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "add")

	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("a task description is required")
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

	it, hints, err := cmd.app.Lists.Add(ctx, loc, text, tada.AddOptions{
		NoDate:  cmd.noDate,
		NoFixup: cmd.noFixup,
		Urgency: cmd.urgency.urgency(item.UrgencyNone),
	})
	if err != nil {
		return err
	}

	if cmd.quiet {
		return nil
	}

	if cmd.app.Config.ShowHints() {
		for _, h := range hints {
			p.Hint(h)
		}
	}
	p.Item(it)

	return nil
}
