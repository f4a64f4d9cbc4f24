package item

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DateInterpreter turns loose date text such as "next friday" into a date.
type DateInterpreter interface {
	Interpret(text string, today time.Time) (time.Time, bool)
}

// HintKind separates changes that were made from plain suggestions.
type HintKind int

const (
	KindHint HintKind = iota
	KindNotice
)

// Hint is an advisory message produced by Fixup.
type Hint struct {
	Kind    HintKind
	Message string
}

func (h Hint) String() string {
	if h.Kind == KindNotice {
		return "Notice: " + h.Message
	}
	return "Hint: " + h.Message
}

const (
	longDescription  = 120
	shortDescription = 30
)

// Fixup returns a copy with loosely written due: and start: dates rewritten
// to YYYY-MM-DD where interp understands them, along with hints about fields
// worth filling in. A nil interp only reports malformed dates.
func (it *Item) Fixup(interp DateInterpreter) (*Item, []Hint) {
	out := it.Clone()
	var hints []Hint

	if out.priority == NoPriority {
		hints = append(hints, Hint{KindHint, "a task can be given an importance by prefixing it with a parenthesized capital letter, like `(A)`."})
	}

	for _, slot := range []string{keyDue, keyStart} {
		given, ok := out.fields().kv[slot]
		if !ok {
			if slot == keyDue {
				hints = append(hints, Hint{KindHint, fmt.Sprintf("a task can be given a %s date by including `%s:YYYY-MM-DD`.", slot, slot)})
			}
			continue
		}
		if _, valid := ParseDate(given); valid {
			continue
		}

		var (
			when time.Time
			got  bool
		)
		if interp != nil {
			when, got = interp.Interpret(strings.ReplaceAll(given, "_", " "), it.cal.today)
		}
		if !got {
			hints = append(hints, Hint{KindNotice, fmt.Sprintf("%s date `%s` should be in YYYY-MM-DD format.", slot, given)})
			continue
		}

		fixed := FormatDate(when)
		out.SetDescription(replaceKV(out.description, slot, func(v string) bool { return v == given }, fixed))
		hints = append(hints, Hint{KindNotice, fmt.Sprintf("%s date `%s` changed to `%s`.", slot, given, fixed)})
	}

	if out.Size() == SizeNone {
		hints = append(hints, Hint{KindHint, "a task can be given a size by including `@S`, `@M`, or `@L`."})
	}

	switch n := utf8.RuneCountInString(out.description); {
	case n > longDescription:
		hints = append(hints, Hint{KindHint, "long descriptions can make a task list slower to skim read."})
	case n < shortDescription:
		hints = append(hints, Hint{KindHint, "short descriptions can make it hard to remember what a task means!"})
	}

	return out, hints
}
