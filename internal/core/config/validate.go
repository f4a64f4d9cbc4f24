package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/tada/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		fieldErr("output.max_width", validWidth(c.Output.MaxWidth)),
		criterio.Run("output.colour", string(c.Output.Colour), validColourMode),
		criterio.Run("output.theme", c.Output.Theme, validTheme),
		fieldErr("http.timeout", nonNegativeDuration(c.HTTP.Timeout)),
		fieldErr("housekeeping.finished_threshold", nonNegative(c.Housekeeping.FinishedThreshold)),
		fieldErr("housekeeping.blank_threshold", nonNegative(c.Housekeeping.BlankThreshold)),
		validatePatterns("local.todo_patterns", c.Local.TodoPatterns),
		validatePatterns("local.done_patterns", c.Local.DonePatterns),
	)
}

func fieldErr(field string, err error) error {
	if err != nil {
		return criterio.NewFieldErrors(field, err)
	}
	return nil
}

func validWidth(w int) error {
	if w != 0 && w < MinWidth {
		return fmt.Errorf("must be 0 or at least %d, got %d", MinWidth, w)
	}
	return nil
}

func validColourMode(m string) error {
	switch ColourMode(m) {
	case ColourAuto, ColourAlways, ColourNever:
		return nil
	default:
		return fmt.Errorf("must be one of auto, always, never, got %q", m)
	}
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func nonNegativeDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validatePatterns(field string, patterns []string) error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), fmt.Errorf("invalid glob pattern %q", p))
		}
	}
	return errs.ToError()
}
