package item

import "regexp"

// Size is a rough effort estimate derived from contexts such as @S or @XXL.
type Size int

const (
	SizeNone Size = iota
	Small
	Medium
	Large
)

// DefaultSize is the bucket used for tasks without a size context.
const DefaultSize = Medium

// Sizes returns every size from smallest to largest.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

func (s Size) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return "None"
	}
}

// OrDefault returns s, or DefaultSize when s is none.
func (s Size) OrDefault() Size {
	if s == SizeNone {
		return DefaultSize
	}
	return s
}

// sizePatterns are checked in order; the first size with any matching context
// wins, so @S beats @L on the same task.
var sizePatterns = []struct {
	size Size
	re   *regexp.Regexp
}{
	{Small, regexp.MustCompile(`(?i)^X*S$`)},
	{Medium, regexp.MustCompile(`(?i)^X*M$`)},
	{Large, regexp.MustCompile(`(?i)^X*L$`)},
}

func sizeFromContexts(contexts []string) Size {
	for _, p := range sizePatterns {
		for _, c := range contexts {
			if p.re.MatchString(c) {
				return p.size
			}
		}
	}
	return SizeNone
}
