// Package item implements the todo.txt task record: parsing a line into raw
// fields, deriving classification from the description, and producing
// rescheduled or completed copies.
package item

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// NoPriority is the priority value of a task without a (X) marker.
const NoPriority rune = 0

// Item is a single task line. The description is the source of truth for
// every derived field; derived values are computed together on first access
// and dropped together whenever the description or priority changes.
//
// An Item is not safe for concurrent use.
type Item struct {
	cal Calendar

	lineNumber     int
	completion     bool
	priority       rune
	completionDate time.Time
	creationDate   time.Time
	description    string

	derived *derived
}

type derived struct {
	importance Importance
	dueDate    time.Time
	startDate  time.Time
	urgency    Urgency
	size       Size
	tags       []string
	contexts   []string
	kv         map[string]string
}

// New returns an empty incomplete task bound to cal.
func New(cal Calendar) *Item {
	return &Item{cal: cal}
}

// Clone returns an independent copy of the raw fields. Derived values are not
// carried over.
func (it *Item) Clone() *Item {
	return &Item{
		cal:            it.cal,
		lineNumber:     it.lineNumber,
		completion:     it.completion,
		priority:       it.priority,
		completionDate: it.completionDate,
		creationDate:   it.creationDate,
		description:    it.description,
	}
}

// Calendar returns the calendar the task classifies against.
func (it *Item) Calendar() Calendar { return it.cal }

// LineNumber is the 1-based position in the list, or 0 if unassigned.
func (it *Item) LineNumber() int { return it.lineNumber }

func (it *Item) SetLineNumber(n int) { it.lineNumber = n }

func (it *Item) Completion() bool { return it.completion }

func (it *Item) SetCompletion(done bool) { it.completion = done }

// Priority returns the priority letter or NoPriority.
func (it *Item) Priority() rune { return it.priority }

// SetPriority sets the priority letter. Anything outside A-Z clears it.
func (it *Item) SetPriority(p rune) {
	if p < 'A' || p > 'Z' {
		p = NoPriority
	}
	it.priority = p
	it.invalidate()
}

// SetImportance sets the priority letter matching imp.
func (it *Item) SetImportance(imp Importance) {
	it.SetPriority(imp.Letter())
}

func (it *Item) ClearImportance() {
	it.SetPriority(NoPriority)
}

func (it *Item) CompletionDate() (time.Time, bool) {
	return it.completionDate, !it.completionDate.IsZero()
}

func (it *Item) SetCompletionDate(t time.Time) { it.completionDate = Day(t) }

func (it *Item) ClearCompletionDate() { it.completionDate = time.Time{} }

func (it *Item) CreationDate() (time.Time, bool) {
	return it.creationDate, !it.creationDate.IsZero()
}

func (it *Item) SetCreationDate(t time.Time) { it.creationDate = Day(t) }

func (it *Item) ClearCreationDate() { it.creationDate = time.Time{} }

func (it *Item) Description() string { return it.description }

// SetDescription replaces the description and drops every derived value.
func (it *Item) SetDescription(s string) {
	it.description = strings.TrimSpace(s)
	it.invalidate()
}

func (it *Item) invalidate() {
	it.derived = nil
}

func (it *Item) fields() *derived {
	if it.derived == nil {
		it.derived = it.derive()
	}
	return it.derived
}

func (it *Item) Importance() Importance { return it.fields().importance }

// DueDate returns the date in the due: tag, if present and well formed.
func (it *Item) DueDate() (time.Time, bool) {
	d := it.fields().dueDate
	return d, !d.IsZero()
}

// StartDate returns the date in the start: tag, if present and well formed.
func (it *Item) StartDate() (time.Time, bool) {
	d := it.fields().startDate
	return d, !d.IsZero()
}

func (it *Item) Urgency() Urgency { return it.fields().urgency }

func (it *Item) Size() Size { return it.fields().size }

// Tags returns the +tag tokens without their marker, in order of appearance.
func (it *Item) Tags() []string { return slices.Clone(it.fields().tags) }

// Contexts returns the @context tokens without their marker, in order of
// appearance.
func (it *Item) Contexts() []string { return slices.Clone(it.fields().contexts) }

// KV returns the key:value tokens of the description.
func (it *Item) KV() map[string]string { return maps.Clone(it.fields().kv) }

// HasTag reports whether the task carries tag. A leading + is ignored and the
// comparison is case-insensitive.
func (it *Item) HasTag(tag string) bool {
	return containsFold(it.fields().tags, strings.TrimPrefix(tag, "+"))
}

// HasContext reports whether the task carries ctx. A leading @ is ignored and
// the comparison is case-insensitive.
func (it *Item) HasContext(ctx string) bool {
	return containsFold(it.fields().contexts, strings.TrimPrefix(ctx, "@"))
}

// IsStartable reports whether the task has no start date or one that is not
// in the future.
func (it *Item) IsStartable() bool {
	start, ok := it.StartDate()
	return !ok || !start.After(it.cal.today)
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

// String renders the task as a todo.txt line.
func (it *Item) String() string {
	var b strings.Builder
	if it.completion {
		b.WriteString("x ")
	}
	if it.priority != NoPriority {
		b.WriteByte('(')
		b.WriteRune(it.priority)
		b.WriteString(") ")
	}
	if it.completion && !it.completionDate.IsZero() {
		b.WriteString(FormatDate(it.completionDate))
		b.WriteByte(' ')
	}
	if !it.creationDate.IsZero() {
		b.WriteString(FormatDate(it.creationDate))
		b.WriteByte(' ')
	}
	b.WriteString(it.description)
	return b.String()
}

// SmartKey is the composite (urgency, importance, size) ordering key, with
// missing values replaced by their defaults.
type SmartKey struct {
	Urgency    Urgency
	Importance Importance
	Size       Size
}

func (it *Item) SmartKey() SmartKey {
	return SmartKey{
		Urgency:    it.Urgency().OrDefault(),
		Importance: it.Importance().OrDefault(),
		Size:       it.Size().OrDefault(),
	}
}

// Compare orders keys by urgency, then importance, then size.
func (k SmartKey) Compare(o SmartKey) int {
	if k.Urgency != o.Urgency {
		return int(k.Urgency) - int(o.Urgency)
	}
	if k.Importance != o.Importance {
		return int(k.Importance) - int(o.Importance)
	}
	return int(k.Size) - int(o.Size)
}
