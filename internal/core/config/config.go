// Package config handles configuration loading and validation for tada.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tada/internal/core/styles"
)

// ColourMode controls whether item output is styled.
type ColourMode string

const (
	ColourAuto   ColourMode = "auto"
	ColourAlways ColourMode = "always"
	ColourNever  ColourMode = "never"
)

// MinWidth is the narrowest output width items can be rendered at.
const MinWidth = 48

// Config holds the application configuration.
type Config struct {
	TodoFile     string             `yaml:"todo_file"`
	DoneFile     string             `yaml:"done_file"`
	Local        LocalConfig        `yaml:"local"`
	HTTP         HTTPConfig         `yaml:"http"`
	Output       OutputConfig       `yaml:"output"`
	Hints        *bool              `yaml:"hints"` // nil = enabled
	Housekeeping HousekeepingConfig `yaml:"housekeeping"`
}

// LocalConfig lists the glob patterns tried, in order, when --local looks for
// lists in the working directory.
type LocalConfig struct {
	TodoPatterns []string `yaml:"todo_patterns"`
	DonePatterns []string `yaml:"done_patterns"`
}

// HTTPConfig holds request headers and limits for lists stored at http(s) URLs.
type HTTPConfig struct {
	UserAgent     string        `yaml:"user_agent"`
	Authorization string        `yaml:"authorization"`
	From          string        `yaml:"from"`
	Timeout       time.Duration `yaml:"timeout"`
}

// OutputConfig holds defaults for the item printer. Command line flags take
// precedence.
type OutputConfig struct {
	MaxWidth     int        `yaml:"max_width"` // 0 = terminal width
	Colour       ColourMode `yaml:"colour"`
	Theme        string     `yaml:"theme"`
	ShowLines    bool       `yaml:"show_lines"`
	ShowCreated  bool       `yaml:"show_created"`
	ShowFinished bool       `yaml:"show_finished"`
}

// HousekeepingConfig sets when tidy and archive reminders are printed.
type HousekeepingConfig struct {
	FinishedThreshold int `yaml:"finished_threshold"`
	BlankThreshold    int `yaml:"blank_threshold"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Local: LocalConfig{
			TodoPatterns: []string{"todo.txt", "TODO", "TODO.TXT", "ToDo", "ToDo.txt", "todo"},
			DonePatterns: []string{"done.txt", "DONE", "DONE.TXT", "Done", "Done.txt", "done"},
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Output: OutputConfig{
			Colour: ColourAuto,
			Theme:  styles.DefaultTheme,
		},
		Housekeeping: HousekeepingConfig{
			FinishedThreshold: 9,
			BlankThreshold:    9,
		},
	}
}

// Load reads configuration from the given path, then applies environment
// overrides. A missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	loadFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if len(c.Local.TodoPatterns) == 0 {
		c.Local.TodoPatterns = defaults.Local.TodoPatterns
	}
	if len(c.Local.DonePatterns) == 0 {
		c.Local.DonePatterns = defaults.Local.DonePatterns
	}
	if c.Output.Colour == "" {
		c.Output.Colour = defaults.Output.Colour
	}
	if c.Output.Theme == "" {
		c.Output.Theme = defaults.Output.Theme
	}
}

// ShowHints reports whether fixup hints are printed when adding tasks.
func (c *Config) ShowHints() bool {
	return c.Hints == nil || *c.Hints
}
