// Package printer writes user facing output: status lines and pretty rendered
// tasks. Commands that prompt attach their Printer to the context with
// NewContext so the confirmation step can reach it through Ctx.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/core/styles"
)

const (
	// DefaultWidth is used when the output is not a terminal.
	DefaultWidth = 80

	unknownDate = "????-??-?? "
	noDate      = "           "
)

// Options control how tasks are rendered.
type Options struct {
	Width        int
	ShowLines    bool
	ShowCreated  bool
	ShowFinished bool
}

// Printer renders status messages and tasks to a single writer.
type Printer struct {
	w          io.Writer
	st         styles.Styles
	opts       Options
	lineDigits int
}

// New creates a Printer. A zero Width falls back to DefaultWidth.
func New(w io.Writer, st styles.Styles, opts Options) *Printer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Printer{w: w, st: st, opts: opts, lineDigits: 2}
}

// Plain returns an uncoloured Printer for w.
func Plain(w io.Writer) *Printer {
	r := styles.NewRenderer(w, false)
	palette, _ := styles.GetPalette(styles.DefaultTheme)
	return New(w, styles.New(r, palette), Options{})
}

type ctxKey struct{}

// NewContext returns ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer attached to ctx, or a plain stdout printer.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return Plain(os.Stdout)
}

// SetLineDigits sets the zero padded width used for line numbers.
func (p *Printer) SetLineDigits(n int) {
	p.lineDigits = max(n, 1)
}

func (p *Printer) line(style lipgloss.Style, s string) {
	_, _ = fmt.Fprintln(p.w, style.Render(s))
}

// Infof writes a status line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.st.Status, fmt.Sprintf(format, args...))
}

// Successf writes a status line for a completed action.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.st.Success, fmt.Sprintf(format, args...))
}

// Warnf writes a notice line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.st.Notice, fmt.Sprintf(format, args...))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.st.Error, fmt.Sprintf(format, args...))
}

// Heading writes a "# heading" row.
func (p *Printer) Heading(h string) {
	p.line(p.st.Heading, "# "+h)
}

// Separator writes an empty line.
func (p *Printer) Separator() {
	_, _ = fmt.Fprintln(p.w)
}

// Hint writes a fixup hint as a notice.
func (p *Printer) Hint(h item.Hint) {
	p.line(p.st.Notice, h.String())
}

// Item writes a single task, truncated to the configured width.
func (p *Printer) Item(it *item.Item) {
	_, _ = fmt.Fprintln(p.w, p.FormatItem(it))
}

// FormatItem renders it without the trailing newline.
func (p *Printer) FormatItem(it *item.Item) string {
	dim := it.Completion() || !it.IsStartable()

	var plain strings.Builder
	var styled strings.Builder
	both := func(s string) {
		plain.WriteString(s)
		styled.WriteString(s)
	}

	if it.Completion() {
		both("x ")
	} else {
		both("  ")
	}

	if it.Priority() == item.NoPriority {
		both("(?) ")
	} else {
		letter := string(it.Priority())
		plain.WriteString("(" + letter + ") ")
		styled.WriteString("(" + p.priorityStyle(it.Importance()).Render(letter) + ") ")
	}

	if p.opts.ShowFinished {
		switch done, ok := it.CompletionDate(); {
		case it.Completion() && ok:
			both(item.FormatDate(done) + " ")
		case it.Completion():
			both(unknownDate)
		default:
			both(noDate)
		}
	}

	if p.opts.ShowCreated {
		if created, ok := it.CreationDate(); ok {
			both(item.FormatDate(created) + " ")
		} else {
			both(unknownDate)
		}
	}

	if p.opts.ShowLines {
		both(fmt.Sprintf("#%0*d ", p.lineDigits, it.LineNumber()))
	}

	room := p.opts.Width - utf8.RuneCountInString(plain.String())
	both(truncate(it.Description(), room))

	if dim {
		return p.st.Dim.Render(plain.String())
	}
	return styled.String()
}

func (p *Printer) priorityStyle(imp item.Importance) lipgloss.Style {
	switch imp {
	case item.Critical:
		return p.st.Critical
	case item.Important:
		return p.st.Important
	case item.SemiImportant:
		return p.st.SemiImportant
	default:
		return p.st.Priority
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
