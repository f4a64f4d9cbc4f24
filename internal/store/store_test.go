package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/list"
)

var testCal = item.NewCalendar(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

func newTestStore(cfg config.HTTPConfig) *Store {
	return New(cfg, testCal, zerolog.Nop())
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		loc     string
		want    string
		wantErr error
	}{
		{"absolute path", filepath.Join(dir, "todo.txt"), filepath.Join(dir, "todo.txt"), nil},
		{"file url", "file://" + filepath.ToSlash(filepath.Join(dir, "todo.txt")), filepath.Join(dir, "todo.txt"), nil},
		{"http", "http://example.com/todo.txt", "http://example.com/todo.txt", nil},
		{"https", "https://example.com/todo.txt", "https://example.com/todo.txt", nil},
		{"ftp", "ftp://example.com/todo.txt", "", ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.loc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_RelativePath(t *testing.T) {
	got, err := Resolve("todo.txt")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "todo.txt", filepath.Base(got))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "todo.txt")
	s := newTestStore(config.HTTPConfig{})
	ctx := context.Background()

	_, err := s.Load(ctx, path)
	require.ErrorIs(t, err, ErrNotFound)

	lst := list.ParseString("(A) first\n\n# note\nsecond @S\n", testCal)
	lst.Location = path
	require.NoError(t, s.Save(ctx, lst))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file cleaned up")

	got, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, got.Location)
	assert.Equal(t, 2, got.CountItems())
	assert.Equal(t, 2, got.CountBlank())
	assert.Equal(t, 4, got.Lines[3].Item.LineNumber())
	assert.Equal(t, "(A) first\n\n# note\nsecond @S\n", got.Serialize())
}

func TestSave_ThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sync", "todo.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte("old\n"), 0o600))

	link := filepath.Join(dir, "todo.txt")
	require.NoError(t, os.Symlink(target, link))

	s := newTestStore(config.HTTPConfig{})
	lst := list.ParseString("new task\n", testCal)
	lst.Location = link
	require.NoError(t, s.Save(context.Background(), lst))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link kept")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new task\n", string(data))

	info, err = os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "done.txt")
	s := newTestStore(config.HTTPConfig{})
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, path, list.ParseLine("x one", 0, testCal)))
	require.NoError(t, s.Append(ctx, path, list.ParseLine("x two", 0, testCal), list.ParseLine("x three", 0, testCal)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x one\nx two\nx three\n", string(data))
}

func TestLoadOrEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	lst, err := newTestStore(config.HTTPConfig{}).LoadOrEmpty(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, lst.Lines)
	assert.Equal(t, path, lst.Location)
}

type remoteList struct {
	mu      sync.Mutex
	body    string
	headers http.Header
	ctype   string
}

func (r *remoteList) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headers = req.Header.Clone()

	switch req.Method {
	case http.MethodGet:
		_, _ = io.WriteString(w, r.body)
	case http.MethodPut:
		data, _ := io.ReadAll(req.Body)
		r.body = string(data)
		r.ctype = req.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestHTTPRoundTrip(t *testing.T) {
	remote := &remoteList{body: "(B) remote task @M\n"}
	srv := httptest.NewServer(remote)
	defer srv.Close()

	s := newTestStore(config.HTTPConfig{
		UserAgent:     "tada-test",
		Authorization: "Bearer abc",
		From:          "me@example.com",
		Timeout:       5 * time.Second,
	})
	ctx := context.Background()
	loc := srv.URL + "/todo.txt"

	lst, err := s.Load(ctx, loc)
	require.NoError(t, err)
	require.Equal(t, 1, lst.CountItems())
	assert.Equal(t, loc, lst.Location)
	assert.Equal(t, "tada-test", remote.headers.Get("User-Agent"))
	assert.Equal(t, "Bearer abc", remote.headers.Get("Authorization"))
	assert.Equal(t, "Bearer abc", remote.headers.Get("X-Tada-Authorization"))
	assert.Equal(t, "me@example.com", remote.headers.Get("From"))

	lst.Append(list.ParseLine("another", 0, testCal))
	require.NoError(t, s.Save(ctx, lst))
	assert.Equal(t, "(B) remote task @M\nanother\n", remote.body)
	assert.Equal(t, "text/plain", remote.ctype)
}

func TestHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer srv.Close()

	s := newTestStore(config.HTTPConfig{Timeout: 5 * time.Second})
	ctx := context.Background()

	_, err := s.Load(ctx, srv.URL+"/missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Load(ctx, srv.URL+"/forbidden")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.MethodGet, httpErr.Method)
	assert.Contains(t, httpErr.Status, "403")

	err = s.Save(ctx, &list.List{Location: srv.URL + "/forbidden"})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.MethodPut, httpErr.Method)
}
