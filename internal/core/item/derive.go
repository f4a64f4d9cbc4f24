package item

import (
	"regexp"
	"time"
)

var (
	reTag     = regexp.MustCompile(`(?:^|\s)[+](\S+)`)
	reContext = regexp.MustCompile(`(?:^|\s)[@](\S+)`)
	reKV      = regexp.MustCompile(`([^\s:]+):([^\s:]+)`)
)

const (
	keyDue   = "due"
	keyStart = "start"
)

func (it *Item) derive() *derived {
	d := &derived{
		importance: ImportanceFromPriority(it.priority),
		tags:       scanMarked(reTag, it.description),
		contexts:   scanMarked(reContext, it.description),
		kv:         scanKV(it.description),
	}

	d.dueDate = kvDate(d.kv, keyDue)
	d.startDate = kvDate(d.kv, keyStart)
	if !d.dueDate.IsZero() {
		d.urgency = it.cal.UrgencyOf(d.dueDate)
	}
	d.size = sizeFromContexts(d.contexts)

	return d
}

func scanMarked(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// scanKV collects key:value tokens left to right; a repeated key keeps its
// last value.
func scanKV(s string) map[string]string {
	kv := make(map[string]string)
	for _, m := range reKV.FindAllStringSubmatch(s, -1) {
		kv[m[1]] = m[2]
	}
	return kv
}

func kvDate(kv map[string]string, key string) time.Time {
	v, ok := kv[key]
	if !ok {
		return time.Time{}
	}
	t, ok := ParseDate(v)
	if !ok {
		return time.Time{}
	}
	return t
}
