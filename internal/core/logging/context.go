package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	listKey    contextKey = "list"
)

// WithCommand adds the running subcommand name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithList adds the location of the list being worked on to the context.
func WithList(ctx context.Context, location string) context.Context {
	return context.WithValue(ctx, listKey, location)
}

// GetCommand retrieves the subcommand name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// GetList retrieves the list location from the context.
// Returns empty string if not present.
func GetList(ctx context.Context) string {
	if loc, ok := ctx.Value(listKey).(string); ok {
		return loc
	}
	return ""
}
