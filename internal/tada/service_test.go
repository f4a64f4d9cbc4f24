package tada

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/list"
	"github.com/colonyops/tada/internal/store"
)

type stubDates map[string]time.Time

func (s stubDates) Interpret(text string, _ time.Time) (time.Time, bool) {
	t, ok := s[text]
	return t, ok
}

func newTestService(t *testing.T, content string) (*ListService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "todo.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	st := store.New(config.HTTPConfig{}, testCal, zerolog.Nop())
	dates := stubDates{"tomorrow": time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)}
	return NewListService(st, testCal, dates, zerolog.Nop()), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestListService_Add(t *testing.T) {
	svc, path := newTestService(t, "")
	ctx := context.Background()

	it, hints, err := svc.Add(ctx, path, "(A) write the quarterly planning doc @M due:tomorrow", AddOptions{})
	require.NoError(t, err)
	assert.Equal(t, "(A) 2024-05-15 write the quarterly planning doc @M due:2024-05-16", it.String())
	require.Len(t, hints, 1)
	assert.Equal(t, item.KindNotice, hints[0].Kind)

	_, _, err = svc.Add(ctx, path, "second", AddOptions{NoDate: true, NoFixup: true, Urgency: item.Soon})
	require.NoError(t, err)

	assert.Equal(t,
		"(A) 2024-05-15 write the quarterly planning doc @M due:2024-05-16\nsecond due:2024-05-17\n",
		readFile(t, path))
}

func TestListService_Prepare_KeepsCreationDate(t *testing.T) {
	svc, _ := newTestService(t, "")
	it, _ := svc.Prepare("2024-01-01 old task", AddOptions{NoFixup: true})
	assert.Equal(t, "2024-01-01 old task", it.String())
}

func TestListService_MarkDone(t *testing.T) {
	svc, path := newTestService(t, sample)
	ctx := context.Background()

	out, n, err := svc.MarkDone(ctx, path, list.SearchTerms{"bread"}, true, Always)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, out.CountCompleted())
	assert.Contains(t, readFile(t, path), "x (B) 2024-05-15 2024-05-15 buy bread +shop\n")
}

func TestListService_NoMatchLeavesFileAlone(t *testing.T) {
	svc, path := newTestService(t, "a\r\nb\r\n")

	_, n, err := svc.Remove(context.Background(), path, list.SearchTerms{"zzz"}, Always)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "a\r\nb\r\n", readFile(t, path))
}

func TestListService_Pull(t *testing.T) {
	svc, path := newTestService(t, sample)

	_, n, err := svc.Pull(context.Background(), path, list.SearchTerms{"bank"}, item.Soon, Always)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, readFile(t, path), "call bank @phone start:2024-05-15 due:2024-05-17\n")
}

func TestListService_Zen(t *testing.T) {
	svc, path := newTestService(t, sample)

	n, err := svc.Zen(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, readFile(t, path), "(A) pay rent @S due:2024-05-17\n")
}

func TestListService_Tidy(t *testing.T) {
	svc, path := newTestService(t, sample)

	dropped, err := svc.Tidy(context.Background(), path, list.SortOriginal)
	require.NoError(t, err)
	assert.Equal(t, 2, dropped)
	assert.Equal(t,
		"(A) pay rent @S due:2024-05-10\nx 2024-05-01 2024-04-01 buy milk\n(B) buy bread +shop\ncall bank @phone start:2024-06-01\n",
		readFile(t, path))
}

func TestListService_Archive(t *testing.T) {
	svc, path := newTestService(t, sample)
	done := filepath.Join(filepath.Dir(path), "done.txt")
	require.NoError(t, os.WriteFile(done, []byte("x older\n"), 0o644))

	n, err := svc.Archive(context.Background(), path, done)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "x older\nx 2024-05-01 2024-04-01 buy milk\n", readFile(t, done))
	assert.NotContains(t, readFile(t, path), "buy milk")

	n, err = svc.Archive(context.Background(), path, done)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListService_LoadMissing(t *testing.T) {
	svc, path := newTestService(t, "")
	_, err := svc.Load(context.Background(), path)
	require.ErrorIs(t, err, store.ErrNotFound)
}
