package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleColor  = lipgloss.Color("#00ccff")
	passColor   = lipgloss.Color("#00ff88")
	failColor   = lipgloss.Color("#ff4444")
	borderColor = lipgloss.Color("#444466")
)

// Title writes a banner heading. Colors and borders are dropped when w is
// not a terminal.
func Title(w io.Writer, text string) error {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().
		Bold(true).
		Foreground(titleColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(borderColor)
	_, err := fmt.Fprintln(w, style.Render(text))
	return err
}

// Status writes a pass/fail line.
func Status(w io.Writer, ok bool, text string) error {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Bold(true).Foreground(passColor)
	mark := "PASS"
	if !ok {
		style = style.Foreground(failColor)
		mark = "FAIL"
	}
	_, err := fmt.Fprintf(w, "%s %s\n", style.Render(mark), text)
	return err
}
