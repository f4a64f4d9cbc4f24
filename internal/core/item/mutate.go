package item

import (
	"regexp"
	"strings"
	"time"
)

var reToken = regexp.MustCompile(`\S+`)

// replaceKV rewrites every whitespace separated key:value token whose key is
// exactly key and whose value satisfies match. Keys such as restart: or
// overdue: are left alone.
func replaceKV(s, key string, match func(value string) bool, value string) string {
	prefix := key + ":"
	return reToken.ReplaceAllStringFunc(s, func(tok string) string {
		if !strings.HasPrefix(tok, prefix) || !match(tok[len(prefix):]) {
			return tok
		}
		return prefix + value
	})
}

// validKVValue matches the value half of a key:value token.
func validKVValue(v string) bool {
	return v != "" && !strings.ContainsRune(v, ':')
}

// ButDone returns a completed copy. When stamp is set the completion date
// becomes today and a missing creation date is backfilled with today.
func (it *Item) ButDone(stamp bool) *Item {
	out := it.Clone()
	out.completion = true
	if stamp {
		out.completionDate = it.cal.today
		if out.creationDate.IsZero() {
			out.creationDate = it.cal.today
		}
	}
	return out
}

// SetUrgency rewrites the due: tag to the representative date of u. Tasks in
// a work or school context are never scheduled on a weekend unless the target
// is today or overdue.
func (it *Item) SetUrgency(u Urgency) {
	if u == UrgencyNone {
		return
	}

	due := it.cal.DateFor(u)
	if u > Today && (it.HasContext("work") || it.HasContext("school")) {
		switch due.Weekday() {
		case time.Saturday:
			due = due.AddDate(0, 0, -1)
		case time.Sunday:
			due = due.AddDate(0, 0, -2)
		}
	}

	if old, ok := it.fields().kv[keyDue]; ok {
		it.SetDescription(replaceKV(it.description, keyDue, func(v string) bool { return v == old }, FormatDate(due)))
		return
	}
	it.SetDescription(it.description + " " + keyDue + ":" + FormatDate(due))
}

// ButPull returns a copy rescheduled to u with any start: tag moved to today.
func (it *Item) ButPull(u Urgency) *Item {
	out := it.Clone()
	out.SetUrgency(u)

	if _, ok := out.fields().kv[keyStart]; ok {
		out.SetDescription(replaceKV(out.description, keyStart, validKVValue, FormatDate(it.cal.today)))
	}
	return out
}

// Zen returns a copy of an overdue task moved to a less stressful date:
// important small tasks go to Soon, tasks that are only one of important or
// small go to NextWeek, everything else to NextMonth. Tasks that are not
// overdue are returned as an unchanged copy.
func (it *Item) Zen() *Item {
	if it.Urgency() != Overdue {
		return it.Clone()
	}

	imp := it.Importance()
	important := imp == Critical || imp == Important
	small := it.Size() == Small

	target := NextMonth
	switch {
	case important && small:
		target = Soon
	case important || small:
		target = NextWeek
	}

	out := it.Clone()
	out.SetUrgency(target)
	return out
}
