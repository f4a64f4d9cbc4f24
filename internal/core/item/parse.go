package item

import (
	"regexp"
	"strings"
	"time"
)

var (
	reCompletion = regexp.MustCompile(`^x\s+`)
	rePriority   = regexp.MustCompile(`^\(([A-Z])\)\s+`)
	reDate       = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+`)
)

// Parse builds a task from a single non-blank, non-comment line. It never
// fails: fields that do not match the positional grammar are left unset and
// their text stays in the description.
func Parse(line string, cal Calendar) *Item {
	it := New(cal)
	rest := line

	if m := reCompletion.FindString(rest); m != "" {
		it.completion = true
		rest = rest[len(m):]
	}

	if m := rePriority.FindStringSubmatch(rest); m != nil {
		it.priority = rune(m[1][0])
		rest = rest[len(m[0]):]
	}

	first, rest, ok := leadingDate(rest)
	if ok {
		var second time.Time
		if second, rest, ok = leadingDate(rest); ok {
			it.completionDate = first
			it.creationDate = second
		} else {
			it.creationDate = first
		}
	}

	it.description = strings.TrimSpace(rest)
	return it
}

// leadingDate consumes a YYYY-MM-DD token and its trailing whitespace. A token
// that does not parse as a real date is left in place.
func leadingDate(s string) (time.Time, string, bool) {
	m := reDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, s, false
	}
	t, ok := ParseDate(m[1])
	if !ok {
		return time.Time{}, s, false
	}
	return t, s[len(m[0]):], true
}
