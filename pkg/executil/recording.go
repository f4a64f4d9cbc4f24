package executil

import (
	"context"
	"io"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors maps to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps command names to what they write to stdout.
	// Key is the command name (e.g., "vi").
	Outputs map[string][]byte

	// Errors maps command names to their error.
	Errors map[string]error
}

// RunAttached records the command and writes any configured output to stdout.
func (e *RecordingExecutor) RunAttached(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, cmd string, args ...string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{Cmd: cmd, Args: args})

	if out := e.Outputs[cmd]; len(out) > 0 && stdout != nil {
		_, _ = stdout.Write(out)
	}
	return e.Errors[cmd]
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
