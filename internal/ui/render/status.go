package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/kk-code-lab/qlnav/internal/textutil"
)

var (
	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	nameStyle = lipgloss.NewStyle().
			Bold(true)
)

// StatusPrinter writes one line per previewed file.
type StatusPrinter struct {
	out    io.Writer
	styled bool
	width  func() int
}

// NewStatusPrinter writes to f, styling and fitting lines to the terminal
// width when f is a terminal.
func NewStatusPrinter(f *os.File) *StatusPrinter {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return NewPlainStatusPrinter(f)
	}
	return &StatusPrinter{
		out:    f,
		styled: true,
		width: func() int {
			w, _, err := term.GetSize(int(fd))
			if err != nil {
				return 0
			}
			return w
		},
	}
}

// NewPlainStatusPrinter writes unstyled, untruncated lines to w.
func NewPlainStatusPrinter(w io.Writer) *StatusPrinter {
	return &StatusPrinter{out: w}
}

// FormatCounter returns the 1-based "[i/n]" prefix.
func FormatCounter(index, total int) string {
	return fmt.Sprintf("[%d/%d]", index+1, total)
}

// FormatStatus returns the plain status line for a file.
func FormatStatus(index, total int, name string, width int) string {
	counter := FormatCounter(index, total)
	return counter + " " + fitName(counter, name, width)
}

func fitName(counter, name string, width int) string {
	name = textutil.SanitizeName(name)
	if width > 0 {
		name = textutil.FitWidth(name, width-textutil.DisplayWidth(counter)-1)
	}
	return name
}

// Print writes the status line for file index of total.
func (p *StatusPrinter) Print(index, total int, name string) {
	if p == nil || p.out == nil {
		return
	}
	width := 0
	if p.width != nil {
		width = p.width()
	}
	if !p.styled {
		fmt.Fprintln(p.out, FormatStatus(index, total, name, width))
		return
	}

	counter := FormatCounter(index, total)
	fmt.Fprintln(p.out, counterStyle.Render(counter)+" "+nameStyle.Render(fitName(counter, name, width)))
}
