package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/permly/pkg/config"
	"github.com/arthur-debert/permly/pkg/constants"
	"github.com/arthur-debert/permly/pkg/output/styles"
	"github.com/arthur-debert/permly/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Printer writes previews and messages to a single writer
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a printer; styled enables lipgloss styling
func NewPrinter(out io.Writer, styled bool) *Printer {
	return &Printer{out: out, styled: styled}
}

// Preview writes the dry-run line for a behavior
func (p *Printer) Preview(b types.Behavior) error {
	prefix := constants.PreviewPrefix + ":"
	if p.styled {
		prefix = styles.GetStyle("PreviewPrefix").Render(prefix)
	}
	_, err := fmt.Fprintf(p.out, "%s %s\n", prefix, b.Render())
	return err
}

// Message writes a user-facing error message
func (p *Printer) Message(msg string) error {
	if p.styled {
		msg = styles.GetStyle("Error").Render(msg)
	}
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfigureColor decides whether output to f is styled for the given color
// mode and sets the lipgloss color profile accordingly.
func ConfigureColor(mode string, f *os.File) bool {
	tty := IsTerminal(f)

	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		return false
	case config.ColorAlways:
		if !tty {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		return true
	default:
		if !tty {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return tty
	}
}
