package list

import "github.com/colonyops/tada/internal/core/item"

// Group is a heading with the tasks filed under it.
type Group struct {
	Heading string
	Items   []*item.Item
}

// GroupBy selects the dimension used by Groups.
type GroupBy int

const (
	GroupNone GroupBy = iota
	GroupUrgency
	GroupImportance
	GroupSize
)

// Groups buckets items by the chosen dimension, in category order. Tasks
// without a value fall into the default bucket. Empty groups are omitted and
// item order within a group is preserved. GroupNone yields a single group
// with an empty heading.
func Groups(items []*item.Item, by GroupBy) []Group {
	switch by {
	case GroupUrgency:
		return bucket(items, item.Urgencies(), func(it *item.Item) item.Urgency { return it.Urgency().OrDefault() })
	case GroupImportance:
		return bucket(items, item.Importances(), func(it *item.Item) item.Importance { return it.Importance().OrDefault() })
	case GroupSize:
		return bucket(items, item.Sizes(), func(it *item.Item) item.Size { return it.Size().OrDefault() })
	default:
		if len(items) == 0 {
			return nil
		}
		return []Group{{Items: items}}
	}
}

func bucket[K interface {
	comparable
	String() string
}](items []*item.Item, keys []K, keyOf func(*item.Item) K) []Group {
	byKey := make(map[K][]*item.Item, len(keys))
	for _, it := range items {
		k := keyOf(it)
		byKey[k] = append(byKey[k], it)
	}

	var out []Group
	for _, k := range keys {
		if its := byKey[k]; len(its) > 0 {
			out = append(out, Group{Heading: k.String(), Items: its})
		}
	}
	return out
}
