package item

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUrgency is returned by ParseUrgency for unknown names.
var ErrInvalidUrgency = errors.New("invalid urgency")

// Urgency is the time-boxed category derived from a due date. Lower values are
// more urgent.
type Urgency int

const (
	UrgencyNone Urgency = iota
	Overdue
	Today
	Soon
	ThisWeek
	NextWeek
	NextMonth
	Later
)

// DefaultUrgency is the bucket used for tasks without a due date when sorting
// or grouping.
const DefaultUrgency = Soon

// Urgencies returns every urgency from most to least urgent.
func Urgencies() []Urgency {
	return []Urgency{Overdue, Today, Soon, ThisWeek, NextWeek, NextMonth, Later}
}

func (u Urgency) String() string {
	switch u {
	case Overdue:
		return "Overdue"
	case Today:
		return "Today"
	case Soon:
		return "Soon"
	case ThisWeek:
		return "This week"
	case NextWeek:
		return "Next week"
	case NextMonth:
		return "Next month"
	case Later:
		return "Later"
	default:
		return "None"
	}
}

// OrDefault returns u, or DefaultUrgency when u is none.
func (u Urgency) OrDefault() Urgency {
	if u == UrgencyNone {
		return DefaultUrgency
	}
	return u
}

// ParseUrgency maps a user supplied name such as "today" or "next-week".
func ParseUrgency(s string) (Urgency, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "overdue":
		return Overdue, nil
	case "today":
		return Today, nil
	case "soon":
		return Soon, nil
	case "thisweek", "week":
		return ThisWeek, nil
	case "nextweek":
		return NextWeek, nil
	case "nextmonth", "month":
		return NextMonth, nil
	case "later":
		return Later, nil
	default:
		return UrgencyNone, fmt.Errorf("%w: %q", ErrInvalidUrgency, s)
	}
}
