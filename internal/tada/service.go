package tada

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/list"
)

// ListStore is the transport the service reads and writes lists through.
type ListStore interface {
	Load(ctx context.Context, loc string) (*list.List, error)
	LoadOrEmpty(ctx context.Context, loc string) (*list.List, error)
	Save(ctx context.Context, lst *list.List) error
	Append(ctx context.Context, loc string, lines ...list.Line) error
}

// AddOptions control how a new task is prepared.
type AddOptions struct {
	NoDate  bool
	NoFixup bool
	Urgency item.Urgency
}

// ListService loads a list, applies one transformation and writes it back.
type ListService struct {
	store  ListStore
	cal    item.Calendar
	dates  item.DateInterpreter
	logger zerolog.Logger
}

// NewListService creates a ListService. dates may be nil, in which case fixup
// only reports malformed dates.
func NewListService(store ListStore, cal item.Calendar, dates item.DateInterpreter, logger zerolog.Logger) *ListService {
	return &ListService{store: store, cal: cal, dates: dates, logger: logger}
}

// Calendar returns the calendar tasks are classified against.
func (s *ListService) Calendar() item.Calendar { return s.cal }

// Load reads the list at loc.
func (s *ListService) Load(ctx context.Context, loc string) (*list.List, error) {
	lst, err := s.store.Load(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("could not read todo list: %w", err)
	}
	return lst, nil
}

// Prepare builds the task that Add would append, without writing anything.
func (s *ListService) Prepare(text string, opts AddOptions) (*item.Item, []item.Hint) {
	it := item.Parse(text, s.cal)

	if _, ok := it.CreationDate(); !ok && !opts.NoDate {
		it.SetCreationDate(s.cal.Today())
	}
	if opts.Urgency != item.UrgencyNone {
		it.SetUrgency(opts.Urgency)
	}

	if opts.NoFixup {
		return it, nil
	}
	return it.Fixup(s.dates)
}

// Add appends a new task to the list at loc, creating the list if needed.
func (s *ListService) Add(ctx context.Context, loc, text string, opts AddOptions) (*item.Item, []item.Hint, error) {
	it, hints := s.Prepare(text, opts)

	if err := s.store.Append(ctx, loc, list.LineFromItem(it)); err != nil {
		return nil, nil, fmt.Errorf("add task: %w", err)
	}

	s.logger.Debug().Ctx(ctx).Int("hints", len(hints)).Str("task", it.String()).Msg("task added")
	return it, hints, nil
}

// MarkDone completes matching tasks. The returned list reflects the result
// even when nothing changed.
func (s *ListService) MarkDone(ctx context.Context, loc string, terms list.SearchTerms, stamp bool, confirm ConfirmFunc) (*list.List, int, error) {
	return s.apply(ctx, loc, "done", func(lst *list.List) (*list.List, int, error) {
		return MarkDone(ctx, lst, terms, stamp, confirm)
	})
}

// Pull reschedules matching tasks to u.
func (s *ListService) Pull(ctx context.Context, loc string, terms list.SearchTerms, u item.Urgency, confirm ConfirmFunc) (*list.List, int, error) {
	return s.apply(ctx, loc, "pull", func(lst *list.List) (*list.List, int, error) {
		return Pull(ctx, lst, terms, u, confirm)
	})
}

// Remove blanks out matching tasks.
func (s *ListService) Remove(ctx context.Context, loc string, terms list.SearchTerms, confirm ConfirmFunc) (*list.List, int, error) {
	return s.apply(ctx, loc, "remove", func(lst *list.List) (*list.List, int, error) {
		return Remove(ctx, lst, terms, confirm)
	})
}

// Zen reschedules overdue tasks.
func (s *ListService) Zen(ctx context.Context, loc string) (int, error) {
	_, n, err := s.apply(ctx, loc, "zen", func(lst *list.List) (*list.List, int, error) {
		out, n := Zen(lst)
		return out, n, nil
	})
	return n, err
}

// Tidy drops blank and comment lines and sorts the tasks by order. It returns
// the number of lines dropped.
func (s *ListService) Tidy(ctx context.Context, loc string, order list.SortOrder) (int, error) {
	lst, err := s.Load(ctx, loc)
	if err != nil {
		return 0, err
	}

	out := lst.ButTidy(order)
	if err := s.store.Save(ctx, out); err != nil {
		return 0, fmt.Errorf("tidy: %w", err)
	}

	dropped := len(lst.Lines) - len(out.Lines)
	s.logger.Debug().Ctx(ctx).Int("dropped", dropped).Stringer("order", order).Msg("list tidied")
	return dropped, nil
}

// Archive moves completed tasks from the todo list to the done list. The done
// list is written first so a failure never loses tasks.
func (s *ListService) Archive(ctx context.Context, todoLoc, doneLoc string) (int, error) {
	lst, err := s.Load(ctx, todoLoc)
	if err != nil {
		return 0, err
	}

	keep, moved := Archive(lst)
	if len(moved) == 0 {
		return 0, nil
	}

	if err := s.store.Append(ctx, doneLoc, moved...); err != nil {
		return 0, fmt.Errorf("append to done list: %w", err)
	}
	if err := s.store.Save(ctx, keep); err != nil {
		return 0, fmt.Errorf("save todo list: %w", err)
	}

	s.logger.Debug().Ctx(ctx).Int("moved", len(moved)).Str("done", doneLoc).Msg("tasks archived")
	return len(moved), nil
}

func (s *ListService) apply(
	ctx context.Context,
	loc, action string,
	fn func(*list.List) (*list.List, int, error),
) (*list.List, int, error) {
	lst, err := s.Load(ctx, loc)
	if err != nil {
		return nil, 0, err
	}

	out, n, err := fn(lst)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return lst, 0, nil
	}

	if err := s.store.Save(ctx, out); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", action, err)
	}

	s.logger.Debug().Ctx(ctx).Str("action", action).Int("count", n).Msg("list updated")
	return out, n, nil
}
