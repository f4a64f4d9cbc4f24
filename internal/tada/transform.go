package tada

import (
	"context"
	"fmt"

	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/list"
)

// Prompt is the wording used when confirming an action on a single task.
type Prompt struct {
	Question string
	Yes      string
	No       string
}

var (
	PromptDone   = Prompt{Question: "Mark finished?", Yes: "Marking finished", No: "Skipping"}
	PromptPull   = Prompt{Question: "Reschedule?", Yes: "Rescheduling", No: "Skipping"}
	PromptRemove = Prompt{Question: "Remove?", Yes: "Removing", No: "Keeping"}
)

// ConfirmFunc decides whether an action is applied to it. Returning an error
// aborts the whole operation and leaves the list untouched.
type ConfirmFunc func(ctx context.Context, it *item.Item, p Prompt) (bool, error)

// Always confirms every task.
func Always(context.Context, *item.Item, Prompt) (bool, error) { return true, nil }

// Never declines every task.
func Never(context.Context, *item.Item, Prompt) (bool, error) { return false, nil }

// rewrite walks the task lines of lst that satisfy want, asks confirm, and
// replaces confirmed lines with change(line). Other lines are kept as-is.
func rewrite(
	ctx context.Context,
	lst *list.List,
	want func(*item.Item) bool,
	p Prompt,
	confirm ConfirmFunc,
	change func(list.Line) list.Line,
) (*list.List, int, error) {
	out := &list.List{Location: lst.Location, Lines: make([]list.Line, 0, len(lst.Lines))}
	count := 0

	for _, ln := range lst.Lines {
		if ln.Kind != list.KindItem || !want(ln.Item) {
			out.Lines = append(out.Lines, ln)
			continue
		}

		ok, err := confirm(ctx, ln.Item, p)
		if err != nil {
			return nil, 0, fmt.Errorf("confirm line %d: %w", ln.Num, err)
		}
		if !ok {
			out.Lines = append(out.Lines, ln)
			continue
		}

		count++
		next := change(ln)
		next.Num = ln.Num
		if next.Item != nil {
			next.Item.SetLineNumber(ln.Num)
		}
		out.Lines = append(out.Lines, next)
	}

	return out, count, nil
}

// MarkDone completes the incomplete tasks matching any of terms.
func MarkDone(ctx context.Context, lst *list.List, terms list.SearchTerms, stamp bool, confirm ConfirmFunc) (*list.List, int, error) {
	want := func(it *item.Item) bool { return !it.Completion() && terms.MatchesAny(it) }
	return rewrite(ctx, lst, want, PromptDone, confirm, func(ln list.Line) list.Line {
		return ln.ButDone(stamp)
	})
}

// Pull reschedules the incomplete tasks matching any of terms to u.
func Pull(ctx context.Context, lst *list.List, terms list.SearchTerms, u item.Urgency, confirm ConfirmFunc) (*list.List, int, error) {
	want := func(it *item.Item) bool { return !it.Completion() && terms.MatchesAny(it) }
	return rewrite(ctx, lst, want, PromptPull, confirm, func(ln list.Line) list.Line {
		return ln.ButPull(u)
	})
}

// Remove blanks out the tasks matching any of terms, so the remaining line
// numbers stay stable.
func Remove(ctx context.Context, lst *list.List, terms list.SearchTerms, confirm ConfirmFunc) (*list.List, int, error) {
	return rewrite(ctx, lst, terms.MatchesAny, PromptRemove, confirm, func(list.Line) list.Line {
		return list.BlankLine()
	})
}

// Zen reschedules every overdue task. The count is the number of tasks whose
// due date changed.
func Zen(lst *list.List) (*list.List, int) {
	out := &list.List{Location: lst.Location, Lines: make([]list.Line, 0, len(lst.Lines))}
	count := 0
	for _, ln := range lst.Lines {
		if ln.Kind == list.KindItem && !ln.Item.Completion() && ln.Item.Urgency() == item.Overdue {
			next := ln.ButZen()
			next.Num = ln.Num
			next.Item.SetLineNumber(ln.Num)
			out.Lines = append(out.Lines, next)
			count++
			continue
		}
		out.Lines = append(out.Lines, ln)
	}
	return out, count
}

// Archive splits lst into the lines to keep and the completed tasks to move.
func Archive(lst *list.List) (keep *list.List, moved []list.Line) {
	keep = &list.List{Location: lst.Location}
	for _, ln := range lst.Lines {
		if ln.Kind == list.KindItem && ln.Item.Completion() {
			moved = append(moved, ln)
			continue
		}
		keep.Lines = append(keep.Lines, ln)
	}
	return keep, moved
}

// Select picks up to n actionable tasks ranked by order: completed tasks and
// tasks whose start date is still ahead are skipped. n <= 0 means no limit.
func Select(items []*item.Item, order list.SortOrder, n int) []*item.Item {
	var out []*item.Item
	for _, it := range order.Sort(items) {
		if it.Completion() || !it.IsStartable() {
			continue
		}
		out = append(out, it)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

// Find returns the tasks matching every term, sorted by order.
func Find(items []*item.Item, terms list.SearchTerms, order list.SortOrder) []*item.Item {
	var out []*item.Item
	for _, it := range items {
		if terms.MatchesAll(it) {
			out = append(out, it)
		}
	}
	return order.Sort(out)
}
