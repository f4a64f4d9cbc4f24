package list

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/colonyops/tada/internal/core/item"
)

// ErrInvalidSortOrder is returned by ParseSortOrder for unknown names.
var ErrInvalidSortOrder = errors.New("invalid sort order")

// SortOrder selects how tasks are ordered for display or selection.
type SortOrder int

const (
	SortSmart SortOrder = iota
	SortUrgency
	SortImportance
	SortSize
	SortAlphabetical
	SortDueDate
	SortOriginal
)

// SortOrders returns every order in help-text order.
func SortOrders() []SortOrder {
	return []SortOrder{SortSmart, SortUrgency, SortImportance, SortSize, SortAlphabetical, SortDueDate, SortOriginal}
}

func (o SortOrder) String() string {
	switch o {
	case SortSmart:
		return "smart"
	case SortUrgency:
		return "urgency"
	case SortImportance:
		return "importance"
	case SortSize:
		return "size"
	case SortAlphabetical:
		return "alpha"
	case SortDueDate:
		return "due"
	case SortOriginal:
		return "original"
	default:
		return "unknown"
	}
}

// ParseSortOrder maps a user supplied name, including the short aliases
// accepted on the command line.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smart":
		return SortSmart, nil
	case "urgency", "urgent", "urg":
		return SortUrgency, nil
	case "importance", "import", "imp", "important":
		return SortImportance, nil
	case "tshirtsize", "size", "tshirt", "quick":
		return SortSize, nil
	case "alphabetical", "alphabet", "alpha":
		return SortAlphabetical, nil
	case "due-date", "duedate", "due":
		return SortDueDate, nil
	case "original", "orig":
		return SortOriginal, nil
	default:
		return SortSmart, fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
}

// Sort returns a sorted copy of items. Sorting is stable, so tasks with equal
// keys keep their relative order.
func (o SortOrder) Sort(items []*item.Item) []*item.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, o.compare)
	return out
}

func (o SortOrder) compare(a, b *item.Item) int {
	switch o {
	case SortUrgency:
		return cmp.Compare(a.Urgency().OrDefault(), b.Urgency().OrDefault())
	case SortImportance:
		return cmp.Compare(a.Importance().OrDefault(), b.Importance().OrDefault())
	case SortSize:
		return cmp.Compare(a.Size().OrDefault(), b.Size().OrDefault())
	case SortAlphabetical:
		return strings.Compare(strings.ToLower(a.Description()), strings.ToLower(b.Description()))
	case SortDueDate:
		return compareDue(a, b)
	case SortOriginal:
		return cmp.Compare(a.LineNumber(), b.LineNumber())
	default:
		return a.SmartKey().Compare(b.SmartKey())
	}
}

// compareDue puts tasks without a due date first.
func compareDue(a, b *item.Item) int {
	ad, aok := a.DueDate()
	bd, bok := b.DueDate()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return ad.Compare(bd)
	}
}
