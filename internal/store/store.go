// Package store loads and saves lists from local files or http(s) URLs.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/list"
)

var (
	// ErrNotFound is returned when the list does not exist.
	ErrNotFound = errors.New("list not found")
	// ErrUnsupportedScheme is returned for locations that are neither local
	// paths nor http(s) URLs.
	ErrUnsupportedScheme = errors.New("unsupported location scheme")
)

// HTTPError reports a non-2xx response from a remote list.
type HTTPError struct {
	Method string
	URL    string
	Status string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: HTTP response %s", e.Method, e.URL, e.Status)
}

// Store moves lists between memory and their location.
type Store struct {
	client *http.Client
	http   config.HTTPConfig
	cal    item.Calendar
	logger zerolog.Logger
}

// New creates a Store. Parsed items are classified against cal.
func New(cfg config.HTTPConfig, cal item.Calendar, logger zerolog.Logger) *Store {
	return &Store{
		client: &http.Client{Timeout: cfg.Timeout},
		http:   cfg,
		cal:    cal,
		logger: logger,
	}
}

type location struct {
	remote bool
	path   string // absolute file path, or the URL when remote
}

// Resolve normalises a location: http(s) URLs are kept, file:// URLs and
// plain paths become absolute file paths.
func Resolve(loc string) (string, error) {
	l, err := resolve(loc)
	if err != nil {
		return "", err
	}
	return l.path, nil
}

func resolve(loc string) (location, error) {
	if u, err := url.Parse(loc); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return location{remote: true, path: loc}, nil
		case "file":
			return location{path: filepath.FromSlash(u.Path)}, nil
		default:
			return location{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
		}
	}

	abs, err := filepath.Abs(loc)
	if err != nil {
		return location{}, fmt.Errorf("resolve path %q: %w", loc, err)
	}
	return location{path: abs}, nil
}

// Load reads the list at loc. A missing list is reported as ErrNotFound.
func (s *Store) Load(ctx context.Context, loc string) (*list.List, error) {
	l, err := resolve(loc)
	if err != nil {
		return nil, err
	}

	var r io.ReadCloser
	if l.remote {
		r, err = s.get(ctx, l.path)
	} else {
		r, err = os.Open(l.path)
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrNotFound, l.path)
		}
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	lst, err := list.Parse(r, s.cal)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.path, err)
	}
	lst.Location = l.path

	s.logger.Debug().Ctx(ctx).
		Str("location", l.path).
		Int("lines", len(lst.Lines)).
		Msg("loaded list")

	return lst, nil
}

// LoadOrEmpty is Load, except a missing list yields an empty one bound to loc.
func (s *Store) LoadOrEmpty(ctx context.Context, loc string) (*list.List, error) {
	lst, err := s.Load(ctx, loc)
	if errors.Is(err, ErrNotFound) {
		path, rerr := Resolve(loc)
		if rerr != nil {
			return nil, rerr
		}
		return &list.List{Location: path}, nil
	}
	return lst, err
}

// Save writes lst back to its Location.
func (s *Store) Save(ctx context.Context, lst *list.List) error {
	l, err := resolve(lst.Location)
	if err != nil {
		return err
	}

	body := lst.Serialize()
	if l.remote {
		err = s.put(ctx, l.path, body)
	} else {
		err = writeFile(l.path, body)
	}
	if err != nil {
		return err
	}

	s.logger.Debug().Ctx(ctx).
		Str("location", l.path).
		Int("lines", len(lst.Lines)).
		Msg("saved list")

	return nil
}

// Append adds lines to the end of the list at loc, creating it if needed.
func (s *Store) Append(ctx context.Context, loc string, lines ...list.Line) error {
	lst, err := s.LoadOrEmpty(ctx, loc)
	if err != nil {
		return err
	}
	lst.Append(lines...)
	return s.Save(ctx, lst)
}

// writeFile replaces path atomically. A symlinked path is written through to
// its target and an existing file keeps its permissions.
func writeFile(path, body string) error {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create list dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(body), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp, mode); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
