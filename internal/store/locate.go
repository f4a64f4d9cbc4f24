package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/tada/internal/core/config"
)

// ErrNoLocalList is returned when --local finds no matching file in the
// working directory.
var ErrNoLocalList = errors.New("no local list found")

// ListKind distinguishes the active todo list from the archive.
type ListKind int

const (
	TodoList ListKind = iota
	DoneList
)

func (k ListKind) String() string {
	if k == DoneList {
		return "done list"
	}
	return "todo list"
}

func (k ListKind) fileName() string {
	if k == DoneList {
		return "done.txt"
	}
	return "todo.txt"
}

func (k ListKind) envVar() string {
	if k == DoneList {
		return "DONE_FILE"
	}
	return "TODO_FILE"
}

// Locator resolves where a list lives from flags, environment and config.
type Locator struct {
	cfg    *config.Config
	getenv func(string) string
	getwd  func() (string, error)
}

// NewLocator returns a Locator reading the process environment.
func NewLocator(cfg *config.Config) *Locator {
	return &Locator{cfg: cfg, getenv: os.Getenv, getwd: os.Getwd}
}

// Locate returns the location of the list of the given kind. The order of
// precedence is: --local search, explicit flag, $TODO_FILE or $DONE_FILE,
// the config file, $TODO_DIR, then $HOME.
func (l *Locator) Locate(kind ListKind, flagValue string, local bool) (string, error) {
	if local {
		return l.findLocal(kind)
	}

	if flagValue != "" {
		return flagValue, nil
	}
	if v := l.getenv(kind.envVar()); v != "" {
		return v, nil
	}

	configured := l.cfg.TodoFile
	if kind == DoneList {
		configured = l.cfg.DoneFile
	}
	if configured != "" {
		return configured, nil
	}

	dir := l.getenv("TODO_DIR")
	if dir == "" {
		dir = l.getenv("HOME")
	}
	if dir == "" {
		return "", fmt.Errorf("could not determine path to %s: set TODO_DIR or HOME", kind.fileName())
	}
	return filepath.Join(dir, kind.fileName()), nil
}

// findLocal tries each configured pattern against the working directory and
// returns the first regular file matched.
func (l *Locator) findLocal(kind ListKind) (string, error) {
	cwd, err := l.getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	patterns := l.cfg.Local.TodoPatterns
	if kind == DoneList {
		patterns = l.cfg.Local.DonePatterns
	}

	fsys := os.DirFS(cwd)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return "", fmt.Errorf("match %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := fs.Stat(fsys, m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			return filepath.Join(cwd, filepath.FromSlash(m)), nil
		}
	}

	return "", fmt.Errorf("%w: no %s matching %v in %s", ErrNoLocalList, kind, patterns, cwd)
}
