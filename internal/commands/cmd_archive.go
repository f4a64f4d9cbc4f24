package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/tada"
)

type ArchiveCmd struct {
	flags *Flags
	app   *tada.App

	list   doneOptions
	output outputOptions
}

// NewArchiveCmd creates a new archive command
func NewArchiveCmd(flags *Flags, app *tada.App) *ArchiveCmd {
	return &ArchiveCmd{flags: flags, app: app}
}

// Register adds the archive command to the application
func (cmd *ArchiveCmd) Register(app *cli.Command) *cli.Command {
	var flags []cli.Flag
	flags = append(flags, cmd.list.flags()...)
	flags = append(flags, cmd.output.minimalFlags()...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "archive",
		Usage:     "Move completed tasks from todo.txt to done.txt",
		UsageText: "tada archive [options]",
		Description: `Appends every completed task to the done list and removes it from the todo
list. The done list is created if it does not exist yet.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *ArchiveCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "archive")

	todoLoc, err := cmd.list.todo(cmd.app)
	if err != nil {
		return err
	}
	doneLoc, err := cmd.list.done(cmd.app)
	if err != nil {
		return err
	}
	ctx = logging.WithList(ctx, todoLoc)

	p, err := cmd.output.printer(c, cmd.app.Config)
	if err != nil {
		return err
	}

	n, err := cmd.app.Lists.Archive(ctx, todoLoc, doneLoc)
	if err != nil {
		return err
	}

	if n == 0 {
		p.Infof("No complete tasks found in %s", todoLoc)
		return nil
	}

	p.Successf("Moved %d tasks to %s", n, doneLoc)
	return nil
}
