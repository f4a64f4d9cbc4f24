// Package logging provides component-scoped zerolog loggers that pick up the
// running command and list location from the event context.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions. Events logged
// with .Ctx(ctx) also carry the command and list fields.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
