package commands

import (
	"io"

	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/pkg/iojson"
)

// taskJSON is the --json representation of a task.
type taskJSON struct {
	Line        int               `json:"line"`
	Complete    bool              `json:"complete"`
	Priority    string            `json:"priority,omitempty"`
	Importance  string            `json:"importance,omitempty"`
	Urgency     string            `json:"urgency,omitempty"`
	Size        string            `json:"size,omitempty"`
	Due         string            `json:"due,omitempty"`
	Start       string            `json:"start,omitempty"`
	Created     string            `json:"created,omitempty"`
	Finished    string            `json:"finished,omitempty"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags,omitempty"`
	Contexts    []string          `json:"contexts,omitempty"`
	KV          map[string]string `json:"kv,omitempty"`
	Raw         string            `json:"raw"`
}

func newTaskJSON(it *item.Item) taskJSON {
	tj := taskJSON{
		Line:        it.LineNumber(),
		Complete:    it.Completion(),
		Description: it.Description(),
		Tags:        it.Tags(),
		Contexts:    it.Contexts(),
		KV:          it.KV(),
		Raw:         it.String(),
	}

	if it.Priority() != item.NoPriority {
		tj.Priority = string(it.Priority())
	}
	if imp := it.Importance(); imp != item.ImportanceNone {
		tj.Importance = imp.String()
	}
	if u := it.Urgency(); u != item.UrgencyNone {
		tj.Urgency = u.String()
	}
	if s := it.Size(); s != item.SizeNone {
		tj.Size = s.String()
	}
	if d, ok := it.DueDate(); ok {
		tj.Due = item.FormatDate(d)
	}
	if d, ok := it.StartDate(); ok {
		tj.Start = item.FormatDate(d)
	}
	if d, ok := it.CreationDate(); ok {
		tj.Created = item.FormatDate(d)
	}
	if d, ok := it.CompletionDate(); ok {
		tj.Finished = item.FormatDate(d)
	}

	return tj
}

// writeTasksJSON writes one JSON line per task.
func writeTasksJSON(w io.Writer, items []*item.Item) error {
	for _, it := range items {
		if err := iojson.WriteLine(w, newTaskJSON(it)); err != nil {
			return err
		}
	}
	return nil
}

// writeErrorJSON writes err to w as a JSON error document and returns it.
func writeErrorJSON(w io.Writer, err error, loc string) error {
	data := map[string]any{}
	if loc != "" {
		data["list"] = loc
	}
	_ = iojson.WriteError(w, err.Error(), data)
	return err
}
