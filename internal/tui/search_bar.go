package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderSearchBar draws the search input as one full-width shaded row. The
// left edge carries the accent marker while the input has focus.
func renderSearchBar(width int, in textinput.Model) string {
	if width < 10 {
		width = 10
	}

	marker := " "
	if in.Focused() {
		marker = lipgloss.NewStyle().Foreground(colorAccent).Render(glyphSelected())
	}

	view := strings.NewReplacer("\n", " ", "\r", " ").Replace(in.View())
	if !in.Focused() && in.Value() == "" {
		view = styleMuted().Render("press / to search")
	}

	row := lipgloss.NewStyle().
		Width(width).
		MaxHeight(1).
		Background(colorInputBg).
		Render(marker + " " + view)
	if xansi.StringWidth(row) > width {
		row = xansi.Truncate(row, width, "")
	}
	return row
}
