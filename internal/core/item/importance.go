package item

// Importance is the priority category mapped from a task's priority letter.
// Lower values are more important.
type Importance int

const (
	ImportanceNone Importance = iota
	Critical
	Important
	SemiImportant
	Normal
	Unimportant
)

// DefaultImportance is the bucket used for tasks without a priority when
// sorting or grouping.
const DefaultImportance = Normal

// Importances returns every importance from most to least important.
func Importances() []Importance {
	return []Importance{Critical, Important, SemiImportant, Normal, Unimportant}
}

// ImportanceFromPriority maps a priority letter. A to D map one to one,
// anything later collapses to Unimportant and 0 means no importance.
func ImportanceFromPriority(p rune) Importance {
	switch {
	case p == NoPriority:
		return ImportanceNone
	case p == 'A':
		return Critical
	case p == 'B':
		return Important
	case p == 'C':
		return SemiImportant
	case p == 'D':
		return Normal
	case p >= 'E' && p <= 'Z':
		return Unimportant
	default:
		return ImportanceNone
	}
}

// Letter returns the priority letter written for this importance.
func (i Importance) Letter() rune {
	switch i {
	case Critical:
		return 'A'
	case Important:
		return 'B'
	case SemiImportant:
		return 'C'
	case Normal:
		return 'D'
	case Unimportant:
		return 'E'
	default:
		return NoPriority
	}
}

func (i Importance) String() string {
	switch i {
	case Critical:
		return "Critical"
	case Important:
		return "Important"
	case SemiImportant:
		return "Semi-important"
	case Normal:
		return "Normal"
	case Unimportant:
		return "Unimportant"
	default:
		return "None"
	}
}

// OrDefault returns i, or DefaultImportance when i is none.
func (i Importance) OrDefault() Importance {
	if i == ImportanceNone {
		return DefaultImportance
	}
	return i
}
