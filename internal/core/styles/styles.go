// Package styles provides the lipgloss styles used when printing tasks.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles is a set of styles bound to one output renderer.
type Styles struct {
	Critical      lipgloss.Style
	Important     lipgloss.Style
	SemiImportant lipgloss.Style
	Priority      lipgloss.Style // any other priority letter
	Heading       lipgloss.Style
	Status        lipgloss.Style
	Success       lipgloss.Style
	Notice        lipgloss.Style
	Error         lipgloss.Style
	Dim           lipgloss.Style
}

// NewRenderer returns a renderer for w. When colour is false every style
// rendered through it is plain text; when true the ANSI profile is forced
// regardless of whether w is a terminal.
func NewRenderer(w io.Writer, colour bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if colour {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// New builds styles from palette p on renderer r.
func New(r *lipgloss.Renderer, p Palette) Styles {
	return Styles{
		Critical:      r.NewStyle().Foreground(p.Critical).Bold(true),
		Important:     r.NewStyle().Foreground(p.Important).Bold(true),
		SemiImportant: r.NewStyle().Foreground(p.SemiImportant).Bold(true),
		Priority:      r.NewStyle().Bold(true),
		Heading:       r.NewStyle().Foreground(p.Heading).Bold(true),
		Status:        r.NewStyle().Foreground(p.Status),
		Success:       r.NewStyle().Foreground(p.Status).Bold(true),
		Notice:        r.NewStyle().Foreground(p.Notice),
		Error:         r.NewStyle().Foreground(p.Error),
		Dim:           r.NewStyle().Faint(true),
	}
}
