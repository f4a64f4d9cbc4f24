package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/list"
	"github.com/colonyops/tada/internal/core/styles"
	"github.com/colonyops/tada/internal/printer"
	"github.com/colonyops/tada/internal/store"
	"github.com/colonyops/tada/internal/tada"
)

// listOptions selects the todo list a command works on.
type listOptions struct {
	file  string
	local bool
}

func (o *listOptions) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "the path or URL for todo.txt",
			Destination: &o.file,
		},
		&cli.BoolFlag{
			Name:        "local",
			Aliases:     []string{"l"},
			Usage:       "look for files in the current directory only",
			Destination: &o.local,
		},
	}
}

func (o *listOptions) todo(app *tada.App) (string, error) {
	return app.Locator.Locate(store.TodoList, o.file, o.local)
}

// doneOptions adds the archive location on top of listOptions.
type doneOptions struct {
	listOptions
	doneFile string
}

func (o *doneOptions) flags() []cli.Flag {
	return append(o.listOptions.flags(), &cli.StringFlag{
		Name:        "done-file",
		Usage:       "the path or URL for done.txt",
		Destination: &o.doneFile,
	})
}

func (o *doneOptions) done(app *tada.App) (string, error) {
	return app.Locator.Locate(store.DoneList, o.doneFile, o.local)
}

// outputOptions configure the item printer. The minimal set only carries
// the colour switches.
type outputOptions struct {
	colour       bool
	noColour     bool
	maxWidth     int
	showLines    bool
	showCreated  bool
	showFinished bool
}

func (o *outputOptions) minimalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "colour",
			Aliases:     []string{"color"},
			Usage:       "coloured output",
			Destination: &o.colour,
		},
		&cli.BoolFlag{
			Name:        "no-colour",
			Aliases:     []string{"no-color", "nocolour", "nocolor"},
			Usage:       "plain output",
			Destination: &o.noColour,
		},
	}
}

func (o *outputOptions) flags() []cli.Flag {
	return append(o.minimalFlags(),
		&cli.IntFlag{
			Name:        "max-width",
			Aliases:     []string{"maxwidth"},
			Usage:       "maximum width of terminal output",
			Destination: &o.maxWidth,
		},
		&cli.BoolFlag{
			Name:        "show-lines",
			Aliases:     []string{"L", "lines"},
			Usage:       "show line numbers for tasks",
			Destination: &o.showLines,
		},
		&cli.BoolFlag{
			Name:        "show-created",
			Aliases:     []string{"created"},
			Usage:       "show 'created' dates for tasks",
			Destination: &o.showCreated,
		},
		&cli.BoolFlag{
			Name:        "show-finished",
			Aliases:     []string{"finished"},
			Usage:       "show 'finished' dates for tasks",
			Destination: &o.showFinished,
		},
	)
}

func (o *outputOptions) useColour(c *cli.Command, cfg *config.Config) bool {
	switch {
	case o.noColour:
		return false
	case o.colour:
		return true
	}

	switch cfg.Output.Colour {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return printer.IsTerminal(c.Root().Writer)
}

// printer builds the Printer for the command's writer. Flags take precedence
// over the config file.
func (o *outputOptions) printer(c *cli.Command, cfg *config.Config) (*printer.Printer, error) {
	w := c.Root().Writer

	width := cfg.Output.MaxWidth
	if o.maxWidth != 0 {
		width = o.maxWidth
	}
	switch {
	case width == 0:
		width = printer.TerminalWidth(w)
	case width < config.MinWidth:
		return nil, fmt.Errorf("max-width must be at least %d", config.MinWidth)
	}

	palette, ok := styles.GetPalette(cfg.Output.Theme)
	if !ok {
		palette, _ = styles.GetPalette(styles.DefaultTheme)
	}
	r := styles.NewRenderer(w, o.useColour(c, cfg))

	return printer.New(w, styles.New(r, palette), printer.Options{
		Width:        width,
		ShowLines:    o.showLines || cfg.Output.ShowLines,
		ShowCreated:  o.showCreated || cfg.Output.ShowCreated,
		ShowFinished: o.showFinished || cfg.Output.ShowFinished,
	}), nil
}

// sortFlag declares --sort with validation against the known orders.
func sortFlag(dest *string, def list.SortOrder) cli.Flag {
	names := make([]string, 0, len(list.SortOrders()))
	for _, o := range list.SortOrders() {
		names = append(names, o.String())
	}

	return &cli.StringFlag{
		Name:        "sort",
		Aliases:     []string{"s"},
		Usage:       "sort order (" + strings.Join(names, ", ") + ")",
		Value:       def.String(),
		Destination: dest,
		Validator: func(s string) error {
			_, err := list.ParseSortOrder(s)
			return err
		},
	}
}

// urgencyOptions are the -T/-S/-W/-M scheduling switches.
type urgencyOptions struct {
	named     string
	today     bool
	soon      bool
	nextWeek  bool
	nextMonth bool
}

func (o *urgencyOptions) flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "today", Aliases: []string{"T"}, Usage: "set a due date of today", Destination: &o.today},
		&cli.BoolFlag{Name: "soon", Aliases: []string{"S"}, Usage: "set a due date in the next couple of days", Destination: &o.soon},
		&cli.BoolFlag{Name: "next-week", Aliases: []string{"W"}, Usage: "set a due date the end of next week", Destination: &o.nextWeek},
		&cli.BoolFlag{Name: "next-month", Aliases: []string{"M"}, Usage: "set a due date the end of next month", Destination: &o.nextMonth},
		&cli.StringFlag{
			Name:        "urgency",
			Aliases:     []string{"U"},
			Usage:       "set a due date by urgency name (today, soon, this-week, next-week, next-month, later)",
			Destination: &o.named,
			Validator: func(s string) error {
				_, err := item.ParseUrgency(s)
				return err
			},
		},
	}
}

// urgency returns the selected urgency, or def when no switch was given.
func (o *urgencyOptions) urgency(def item.Urgency) item.Urgency {
	if o.named != "" {
		if u, err := item.ParseUrgency(o.named); err == nil {
			return u
		}
	}

	switch {
	case o.today:
		return item.Today
	case o.soon:
		return item.Soon
	case o.nextWeek:
		return item.NextWeek
	case o.nextMonth:
		return item.NextMonth
	default:
		return def
	}
}

// searchTerms returns the positional arguments, requiring at least one.
func searchTerms(c *cli.Command) (list.SearchTerms, error) {
	if c.Args().Len() == 0 {
		return nil, fmt.Errorf("at least one search term is required")
	}
	return list.SearchTerms(c.Args().Slice()), nil
}

// housekeeping prints archive and tidy reminders after a blank separator.
func housekeeping(p *printer.Printer, lst *list.List, cfg *config.Config) {
	notices := tada.Housekeeping(lst, cfg.Housekeeping)
	if len(notices) == 0 {
		return
	}
	p.Separator()
	for _, n := range notices {
		p.Warnf("%s", n)
	}
}
