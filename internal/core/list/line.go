// Package list holds the line-oriented container around task records: blank
// and comment lines pass through untouched, everything else is parsed into an
// item.Item.
package list

import (
	"regexp"

	"github.com/colonyops/tada/internal/core/item"
)

// LineKind classifies a raw line.
type LineKind int

const (
	KindItem LineKind = iota
	KindComment
	KindBlank
)

func (k LineKind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindComment:
		return "comment"
	case KindBlank:
		return "blank"
	default:
		return "unknown"
	}
}

var (
	reBlank   = regexp.MustCompile(`^\s*$`)
	reComment = regexp.MustCompile(`^\s*#`)
)

// Line is one line of a list. Item is set only for KindItem lines. Num is the
// 1-based position the line was loaded from, 0 for lines built in memory.
type Line struct {
	Kind LineKind
	Text string
	Item *item.Item
	Num  int
}

// ParseLine classifies text and parses it when it is a task.
func ParseLine(text string, num int, cal item.Calendar) Line {
	switch {
	case reBlank.MatchString(text):
		return Line{Kind: KindBlank, Text: text, Num: num}
	case reComment.MatchString(text):
		return Line{Kind: KindComment, Text: text, Num: num}
	}

	it := item.Parse(text, cal)
	it.SetLineNumber(num)
	return Line{Kind: KindItem, Text: text, Item: it, Num: num}
}

// BlankLine returns an empty line.
func BlankLine() Line {
	return Line{Kind: KindBlank}
}

// LineFromItem wraps it, deriving the text from the record.
func LineFromItem(it *item.Item) Line {
	return Line{Kind: KindItem, Text: it.String(), Item: it}
}

// ButDone returns a replacement line with the task completed. Non-task lines
// are returned as-is.
func (l Line) ButDone(stamp bool) Line {
	if l.Kind != KindItem {
		return l
	}
	return LineFromItem(l.Item.ButDone(stamp))
}

// ButPull returns a replacement line with the task rescheduled to u.
func (l Line) ButPull(u item.Urgency) Line {
	if l.Kind != KindItem {
		return l
	}
	return LineFromItem(l.Item.ButPull(u))
}

// ButZen returns a replacement line with an overdue task rescheduled.
func (l Line) ButZen() Line {
	if l.Kind != KindItem {
		return l
	}
	return LineFromItem(l.Item.Zen())
}
