// Package natdate interprets loosely written dates such as "tomorrow" or
// "next friday" for the fixup pass on newly added tasks.
package natdate

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/rs/zerolog"
)

// Interpreter wraps a rule-based English date parser.
type Interpreter struct {
	parser *when.Parser
	logger zerolog.Logger
}

// New returns an Interpreter loaded with the English and common rule sets.
func New(logger zerolog.Logger) *Interpreter {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Interpreter{parser: w, logger: logger}
}

// Interpret resolves text relative to today. Only the calendar date of the
// match is kept.
func (i *Interpreter) Interpret(text string, today time.Time) (time.Time, bool) {
	// Anchor at noon so rules that add hours never cross a day boundary.
	base := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, time.UTC)

	r, err := i.parser.Parse(text, base)
	if err != nil {
		i.logger.Debug().Err(err).Str("text", text).Msg("date interpretation failed")
		return time.Time{}, false
	}
	if r == nil {
		return time.Time{}, false
	}

	y, m, d := r.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}
