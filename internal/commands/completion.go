package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/tada"
)

// TermCompleter returns a ShellCompleteFunc that suggests the tags and
// contexts used on the todo list as search terms.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func TermCompleter(app *tada.App, opts *listOptions) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if app.Lists == nil {
			return
		}

		loc, err := opts.todo(app)
		if err != nil {
			return
		}
		lst, err := app.Lists.Load(ctx, loc)
		if err != nil {
			return
		}

		var terms []string
		for _, it := range lst.Items() {
			for _, c := range it.Contexts() {
				terms = append(terms, "@"+c)
			}
			for _, t := range it.Tags() {
				terms = append(terms, "+"+t)
			}
		}
		slices.Sort(terms)

		w := cmd.Root().Writer
		for _, t := range slices.Compact(terms) {
			_, _ = fmt.Fprintln(w, t)
		}
	}
}
