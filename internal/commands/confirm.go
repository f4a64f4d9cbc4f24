package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/printer"
	"github.com/colonyops/tada/internal/tada"
)

// askFunc prompts the user with a yes/no question. Replaced in tests.
var askFunc = askHuh

func askHuh(ctx context.Context, question string) (bool, error) {
	answer := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, err
	}
	return answer, nil
}

// confirmOptions are the -y/-n switches that answer prompts up front.
type confirmOptions struct {
	yes bool
	no  bool
}

func (o *confirmOptions) flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "yes",
			Aliases:     []string{"y"},
			Usage:       "assume 'yes' to prompts",
			Destination: &o.yes,
		},
		&cli.BoolFlag{
			Name:        "no",
			Aliases:     []string{"n"},
			Usage:       "assume 'no' to prompts",
			Destination: &o.no,
		},
	}
}

// confirm shows each candidate task on the context printer, settles the
// answer from the flags or by asking, and echoes the decision.
func (o *confirmOptions) confirm() tada.ConfirmFunc {
	return func(ctx context.Context, it *item.Item, prompt tada.Prompt) (bool, error) {
		p := printer.Ctx(ctx)
		p.Item(it)

		var ok bool
		switch {
		case o.no:
			ok = false
		case o.yes:
			ok = true
		default:
			var err error
			ok, err = askFunc(ctx, prompt.Question)
			if err != nil {
				return false, fmt.Errorf("prompt: %w", err)
			}
		}

		if ok {
			p.Warnf("%s", prompt.Yes)
		} else {
			p.Warnf("%s", prompt.No)
		}
		p.Separator()
		return ok, nil
	}
}
