package item

import "time"

// DateLayout is the strict date format used by todo.txt lines.
const DateLayout = "2006-01-02"

// Calendar is a snapshot of "today" with the urgency boundaries derived from
// it. A single Calendar is created per invocation and shared by every item so
// that classification stays consistent even if the process runs over midnight.
type Calendar struct {
	today        time.Time
	soon         time.Time
	weekEnd      time.Time
	nextWeekEnd  time.Time
	nextMonthEnd time.Time
}

// NewCalendar returns a Calendar for the day containing t. The time of day and
// location are discarded.
func NewCalendar(t time.Time) Calendar {
	today := Day(t)

	// Weeks run Monday to Sunday.
	toSunday := (7 - int(today.Weekday())) % 7
	weekEnd := today.AddDate(0, 0, toSunday)

	// Day zero of the month after next is the last day of next month.
	nextMonthEnd := time.Date(today.Year(), today.Month()+2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	return Calendar{
		today:        today,
		soon:         today.AddDate(0, 0, 2),
		weekEnd:      weekEnd,
		nextWeekEnd:  weekEnd.AddDate(0, 0, 7),
		nextMonthEnd: nextMonthEnd,
	}
}

// Today returns the calendar's current day.
func (c Calendar) Today() time.Time { return c.today }

// EndOfWeek returns the Sunday closing the current week.
func (c Calendar) EndOfWeek() time.Time { return c.weekEnd }

// EndOfNextWeek returns the Sunday closing next week.
func (c Calendar) EndOfNextWeek() time.Time { return c.nextWeekEnd }

// EndOfNextMonth returns the last day of the month after the current one.
func (c Calendar) EndOfNextMonth() time.Time { return c.nextMonthEnd }

// UrgencyOf classifies a due date.
func (c Calendar) UrgencyOf(due time.Time) Urgency {
	due = Day(due)
	switch {
	case due.Before(c.today):
		return Overdue
	case due.Equal(c.today):
		return Today
	case !due.After(c.soon):
		return Soon
	case !due.After(c.weekEnd):
		return ThisWeek
	case !due.After(c.nextWeekEnd):
		return NextWeek
	case !due.After(c.nextMonthEnd):
		return NextMonth
	default:
		return Later
	}
}

// DateFor returns the representative due date for an urgency, the inverse of
// UrgencyOf. UrgencyNone yields the zero time.
func (c Calendar) DateFor(u Urgency) time.Time {
	switch u {
	case Overdue:
		return c.today.AddDate(0, 0, -1)
	case Today:
		return c.today
	case Soon:
		return c.soon
	case ThisWeek:
		return c.weekEnd
	case NextWeek:
		return c.nextWeekEnd
	case NextMonth:
		return c.nextMonthEnd
	case Later:
		return c.today.AddDate(0, 0, 183)
	default:
		return time.Time{}
	}
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
