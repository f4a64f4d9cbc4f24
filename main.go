package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/commands"
	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/logging"
	"github.com/colonyops/tada/internal/natdate"
	"github.com/colonyops/tada/internal/store"
	"github.com/colonyops/tada/internal/tada"
	"github.com/colonyops/tada/pkg/executil"
	"github.com/colonyops/tada/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		tadaApp   = &tada.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tada",
		Usage:     "Manage a todo.txt list",
		UsageText: "tada [global options] command [command options]",
		Description: `tada reads and writes todo.txt files, the plain text todo list format.

Tasks are ranked by importance (the priority letter), urgency (the due: date)
and size (@S, @M, @L contexts). 'tada show' displays the whole list, while
'tada important', 'tada urgent' and 'tada quick' pick out what to work on next.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TADA_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("TADA_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TADA_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			var (
				cal   = item.NewCalendar(time.Now())
				st    = store.New(cfg.HTTP, cal, logging.Component("store"))
				dates = natdate.New(logging.Component("natdate"))
				lists = tada.NewListService(st, cal, dates, logging.Component("tada"))
			)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*tadaApp = *tada.NewApp(lists, store.NewLocator(cfg), cfg)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewAddCmd(flags, tadaApp).Register(app)
	app = commands.NewShowCmd(flags, tadaApp).Register(app)
	app = commands.NewImportantCmd(flags, tadaApp).Register(app)
	app = commands.NewUrgentCmd(flags, tadaApp).Register(app)
	app = commands.NewQuickCmd(flags, tadaApp).Register(app)
	app = commands.NewFindCmd(flags, tadaApp).Register(app)
	app = commands.NewDoneCmd(flags, tadaApp).Register(app)
	app = commands.NewPullCmd(flags, tadaApp).Register(app)
	app = commands.NewRemoveCmd(flags, tadaApp).Register(app)
	app = commands.NewZenCmd(flags, tadaApp).Register(app)
	app = commands.NewTidyCmd(flags, tadaApp).Register(app)
	app = commands.NewArchiveCmd(flags, tadaApp).Register(app)
	app = commands.NewEditCmd(flags, tadaApp, &executil.RealExecutor{}).Register(app)
	app = commands.NewPathCmd(flags, tadaApp).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
