package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/store"
	"github.com/colonyops/tada/internal/tada"
	"github.com/colonyops/tada/pkg/executil"
)

const defaultEditor = "vi"

type EditCmd struct {
	flags *Flags
	app   *tada.App
	exec  executil.Executor

	list listOptions
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags, app *tada.App, exec executil.Executor) *EditCmd {
	return &EditCmd{flags: flags, app: app, exec: exec}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "edit",
		Usage:       "Open your todo list in your editor",
		UsageText:   "tada edit [options]",
		Description: `Opens the todo list in $EDITOR (vi when unset). Only local lists can be edited.`,
		Flags:       cmd.list.flags(),
		Action:      cmd.run,
	})

	return app
}

// editorCommand splits $EDITOR so values such as "code --wait" work.
func editorCommand() (string, []string) {
	fields := strings.Fields(os.Getenv("EDITOR"))
	if len(fields) == 0 {
		return defaultEditor, nil
	}
	return fields[0], fields[1:]
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "edit")

	loc, err := cmd.list.todo(cmd.app)
	if err != nil {
		return err
	}

	path, err := store.Resolve(loc)
	if err != nil {
		return err
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return fmt.Errorf("cannot edit remote list %s", path)
	}

	editor, args := editorCommand()
	args = append(args, path)

	return cmd.exec.RunAttached(ctx, c.Root().Reader, c.Root().Writer, c.Root().ErrWriter, editor, args...)
}
