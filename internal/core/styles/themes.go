package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the colours used for item output.
type Palette struct {
	Critical      lipgloss.TerminalColor
	Important     lipgloss.TerminalColor
	SemiImportant lipgloss.TerminalColor
	Heading       lipgloss.TerminalColor
	Status        lipgloss.TerminalColor
	Notice        lipgloss.TerminalColor
	Error         lipgloss.TerminalColor
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "ansi"

// themes holds the built-in named palettes. "ansi" sticks to the basic
// 16-colour set so output follows the terminal's own colour scheme.
var themes = map[string]Palette{
	"ansi": {
		Critical:      lipgloss.Color("1"),
		Important:     lipgloss.Color("3"),
		SemiImportant: lipgloss.Color("2"),
		Heading:       lipgloss.Color("15"),
		Status:        lipgloss.Color("15"),
		Notice:        lipgloss.Color("5"),
		Error:         lipgloss.Color("1"),
	},
	"tokyo-night": {
		Critical:      lipgloss.Color("#f7768e"),
		Important:     lipgloss.Color("#e0af68"),
		SemiImportant: lipgloss.Color("#9ece6a"),
		Heading:       lipgloss.Color("#c0caf5"),
		Status:        lipgloss.Color("#7aa2f7"),
		Notice:        lipgloss.Color("#bb9af7"),
		Error:         lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Critical:      lipgloss.Color("#fb4934"),
		Important:     lipgloss.Color("#fabd2f"),
		SemiImportant: lipgloss.Color("#b8bb26"),
		Heading:       lipgloss.Color("#ebdbb2"),
		Status:        lipgloss.Color("#83a598"),
		Notice:        lipgloss.Color("#d3869b"),
		Error:         lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
