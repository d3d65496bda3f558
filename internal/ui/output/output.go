// Package output renders query results for the terminal with a color
// profile that honors NO_COLOR.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/fareroute/internal/ui/style"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected
// terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Printer writes one status line per result.
type Printer struct {
	out *termenv.Output
}

// New creates a Printer on w. A nil w writes to stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out: termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true)),
	}
}

// Success prints a line prefixed with a green check mark.
func (p *Printer) Success(format string, args ...any) {
	p.line(style.Green, style.Check, format, args...)
}

// Failure prints a line prefixed with a red cross.
func (p *Printer) Failure(format string, args ...any) {
	p.line(style.Red, style.Cross, format, args...)
}

// Notice prints a line prefixed with a yellow marker.
func (p *Printer) Notice(format string, args ...any) {
	p.line(style.Yellow, style.Warning, format, args...)
}

// Highlight returns s in the accent color.
func (p *Printer) Highlight(s string) string {
	return p.out.String(s).Foreground(p.out.Color(string(style.Accent))).Bold().String()
}

func (p *Printer) line(c lipgloss.Color, icon, format string, args ...any) {
	mark := p.out.String(icon).Foreground(p.out.Color(string(c))).String()
	_, _ = fmt.Fprintf(p.out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}
