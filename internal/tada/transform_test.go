package tada

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/list"
)

// Wednesday 15 May 2024.
var testCal = item.NewCalendar(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

const sample = `(A) pay rent @S due:2024-05-10
x 2024-05-01 2024-04-01 buy milk
# groceries

(B) buy bread +shop
call bank @phone start:2024-06-01
`

func parse(s string) *list.List {
	return list.ParseString(s, testCal)
}

func TestMarkDone(t *testing.T) {
	lst := parse(sample)

	out, n, err := MarkDone(context.Background(), lst, list.SearchTerms{"buy"}, true, Always)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "already completed tasks are skipped")
	assert.Equal(t, "x (B) 2024-05-15 2024-05-15 buy bread +shop", out.Lines[4].Text)
	assert.Equal(t, 5, out.Lines[4].Item.LineNumber())
	assert.Equal(t, lst.Lines[0].Text, out.Lines[0].Text)
	assert.Equal(t, "(B) buy bread +shop", lst.Lines[4].Text, "input untouched")
}

func TestMarkDone_Unstamped(t *testing.T) {
	out, n, err := MarkDone(context.Background(), parse(sample), list.SearchTerms{"#1"}, false, Always)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "x (A) pay rent @S due:2024-05-10", out.Lines[0].Text)
}

func TestMarkDone_Declined(t *testing.T) {
	var asked []string
	confirm := func(_ context.Context, it *item.Item, p Prompt) (bool, error) {
		asked = append(asked, it.Description())
		assert.Equal(t, PromptDone, p)
		return false, nil
	}

	out, n, err := MarkDone(context.Background(), parse(sample), list.SearchTerms{"@S", "+shop"}, true, confirm)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []string{"pay rent @S due:2024-05-10", "buy bread +shop"}, asked)
	assert.Equal(t, sample, out.Serialize())
}

func TestMarkDone_ConfirmError(t *testing.T) {
	boom := errors.New("aborted")
	confirm := func(context.Context, *item.Item, Prompt) (bool, error) { return false, boom }

	_, _, err := MarkDone(context.Background(), parse(sample), list.SearchTerms{"rent"}, true, confirm)
	require.ErrorIs(t, err, boom)
}

func TestPull(t *testing.T) {
	out, n, err := Pull(context.Background(), parse(sample), list.SearchTerms{"@phone"}, item.Today, Always)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "call bank @phone start:2024-05-15 due:2024-05-15", out.Lines[5].Text)
	assert.True(t, out.Lines[5].Item.IsStartable())
}

func TestRemove(t *testing.T) {
	out, n, err := Remove(context.Background(), parse(sample), list.SearchTerms{"buy"}, Always)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "completed tasks can be removed too")
	require.Len(t, out.Lines, 6)
	assert.Equal(t, list.KindBlank, out.Lines[1].Kind)
	assert.Equal(t, list.KindBlank, out.Lines[4].Kind)
	assert.Equal(t, 2, out.Lines[1].Num)
	assert.Equal(t, list.KindItem, out.Lines[5].Kind)
}

func TestZen(t *testing.T) {
	lst := parse(sample)
	out, n := Zen(lst)

	assert.Equal(t, 1, n)
	assert.Equal(t, "(A) pay rent @S due:2024-05-17", out.Lines[0].Text)
	for i := 1; i < len(lst.Lines); i++ {
		assert.Equal(t, lst.Lines[i].Text, out.Lines[i].Text)
	}
}

func TestZen_SkipsCompleted(t *testing.T) {
	lst := parse("x 2024-05-12 2024-05-01 filed taxes due:2024-05-10\n(B) renew passport due:2024-05-01\n")
	out, n := Zen(lst)

	assert.Equal(t, 1, n)
	assert.Equal(t, "x 2024-05-12 2024-05-01 filed taxes due:2024-05-10", out.Lines[0].Text)
	assert.Equal(t, "(B) renew passport due:2024-05-26", out.Lines[1].Text)
}

func TestArchive(t *testing.T) {
	keep, moved := Archive(parse(sample))
	require.Len(t, moved, 1)
	assert.Equal(t, "x 2024-05-01 2024-04-01 buy milk", moved[0].Text)
	assert.Len(t, keep.Lines, 5)
	assert.Zero(t, keep.CountCompleted())
}

func TestSelect(t *testing.T) {
	lst := parse(`(C) gamma @L
(A) alpha @M
x (A) finished
(A) later start:2024-09-01
(B) beta @S
delta
`)

	tests := []struct {
		name  string
		order list.SortOrder
		n     int
		want  []string
	}{
		{"importance top two", list.SortImportance, 2, []string{"alpha @M", "beta @S"}},
		{"size top one", list.SortSize, 1, []string{"beta @S"}},
		{"no limit", list.SortImportance, 0, []string{"alpha @M", "beta @S", "gamma @L", "delta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, it := range Select(lst.Items(), tt.order, tt.n) {
				got = append(got, it.Description())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind(t *testing.T) {
	lst := parse(sample)

	got := Find(lst.Items(), list.SearchTerms{"buy", "+shop"}, list.SortOriginal)
	require.Len(t, got, 1)
	assert.Equal(t, "buy bread +shop", got[0].Description())

	assert.Len(t, Find(lst.Items(), nil, list.SortOriginal), 4)
}

func TestHousekeeping(t *testing.T) {
	lst := parse("x a\nx b\n\n# c\nd\n")

	assert.Empty(t, Housekeeping(lst, config.HousekeepingConfig{FinishedThreshold: 9, BlankThreshold: 9}))

	notices := Housekeeping(lst, config.HousekeepingConfig{FinishedThreshold: 1, BlankThreshold: 1})
	assert.Equal(t, []string{
		"There are 2 finished tasks. Consider running `tada archive`.",
		"There are 2 blank/comment lines. Consider running `tada tidy`.",
	}, notices)
}

func TestZenQuote(t *testing.T) {
	assert.Contains(t, zenQuotes, ZenQuote())
}
