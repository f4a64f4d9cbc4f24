package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/list"
	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/tada"
)

type FindCmd struct {
	flags *Flags
	app   *tada.App

	list       listOptions
	output     outputOptions
	sort       string
	jsonOutput bool
}

// NewFindCmd creates a new find command
func NewFindCmd(flags *Flags, app *tada.App) *FindCmd {
	return &FindCmd{flags: flags, app: app}
}

// Register adds the find command to the application
func (cmd *FindCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{
		sortFlag(&cmd.sort, list.SortSmart),
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output as JSON lines",
			Destination: &cmd.jsonOutput,
		},
	}
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.flags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "find",
		Usage:     "Search for tasks",
		UsageText: "tada find [options] TERM...",
		Description: `Shows tasks matching every search term. A term starting with "@" matches a
context, "+" matches a tag, "#" matches a line number, and anything else is a
case-insensitive search of the description.`,
		Flags:         flags,
		ShellComplete: TermCompleter(cmd.app, &cmd.list),
		Action:        cmd.run,
	})

	return app
}

func (cmd *FindCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "find")

	terms, err := searchTerms(c)
	if err != nil {
		return err
	}

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

	found := tada.Find(lst.Items(), terms, order)

	if cmd.jsonOutput {
		if err := writeTasksJSON(c.Root().Writer, found); err != nil {
			return fmt.Errorf("encode tasks: %w", err)
		}
		return nil
	}

	p, err := cmd.output.printer(c, cmd.app.Config)
	if err != nil {
		return err
	}
	p.SetLineDigits(lst.LineNumberDigits())

	for _, it := range found {
		p.Item(it)
	}
	return nil
}
