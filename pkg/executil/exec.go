// Package executil provides process execution utilities.
package executil

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Executor runs external commands.
type Executor interface {
	// RunAttached executes a command wired to the given streams, for
	// interactive programs such as editors.
	RunAttached(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, cmd string, args ...string) error
}

// RealExecutor calls actual commands.
type RealExecutor struct{}

// RunAttached executes a command with its standard streams attached and waits
// for it to exit.
func (e *RealExecutor) RunAttached(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, cmd string, args ...string) error {
	c := exec.CommandContext(ctx, cmd, args...)
	c.Stdin = stdin
	c.Stdout = stdout
	c.Stderr = stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("exec %s: %w", cmd, err)
	}
	return nil
}
