package list

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/colonyops/tada/internal/core/item"
)

// List is an ordered sequence of lines loaded from a single location.
type List struct {
	Location string
	Lines    []Line
}

// Parse reads r line by line. Lines are numbered from 1.
func Parse(r io.Reader, cal item.Calendar) (*List, error) {
	l := &List{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	num := 0
	for sc.Scan() {
		num++
		l.Lines = append(l.Lines, ParseLine(strings.TrimSuffix(sc.Text(), "\r"), num, cal))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}

	return l, nil
}

// ParseString parses an in-memory list.
func ParseString(s string, cal item.Calendar) *List {
	l := &List{}
	if s == "" {
		return l
	}
	for i, text := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		l.Lines = append(l.Lines, ParseLine(strings.TrimSuffix(text, "\r"), i+1, cal))
	}
	return l
}

// FromItems builds a list of task lines in the given order.
func FromItems(items []*item.Item) *List {
	l := &List{Lines: make([]Line, 0, len(items))}
	for _, it := range items {
		l.Lines = append(l.Lines, LineFromItem(it.Clone()))
	}
	return l
}

// Items returns the tasks in line order.
func (l *List) Items() []*item.Item {
	var out []*item.Item
	for _, ln := range l.Lines {
		if ln.Kind == KindItem {
			out = append(out, ln.Item)
		}
	}
	return out
}

func (l *List) CountItems() int {
	n := 0
	for _, ln := range l.Lines {
		if ln.Kind == KindItem {
			n++
		}
	}
	return n
}

// CountBlank counts blank and comment lines.
func (l *List) CountBlank() int {
	return len(l.Lines) - l.CountItems()
}

func (l *List) CountCompleted() int {
	n := 0
	for _, ln := range l.Lines {
		if ln.Kind == KindItem && ln.Item.Completion() {
			n++
		}
	}
	return n
}

// Append adds lines to the end of the list.
func (l *List) Append(lines ...Line) {
	l.Lines = append(l.Lines, lines...)
}

// ButTidy returns a new list holding only the tasks, sorted by order. Blank and
// comment lines are dropped.
func (l *List) ButTidy(order SortOrder) *List {
	out := FromItems(order.Sort(l.Items()))
	out.Location = l.Location
	return out
}

// LineNumberDigits is the width needed to print any line number of the list.
func (l *List) LineNumberDigits() int {
	return len(strconv.Itoa(len(l.Lines)))
}

// Serialize renders every line followed by a newline.
func (l *List) Serialize() string {
	var b strings.Builder
	for _, ln := range l.Lines {
		b.WriteString(ln.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the serialized list to w.
func (l *List) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.Serialize())
	return int64(n), err
}
