package tui

import (
	"math"
	"strings"

	"beerrank-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// rankRow is one working-list entry. Rank, medal and colors are derived from
// the row's index at render time, never stored.
type rankRow struct {
	item *model.Item
}

func (r rankRow) FilterValue() string { return r.item.Name }
func (r rankRow) Title() string       { return r.item.Name }

func rowsFromItems(items []*model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, rankRow{item: it})
	}
	return out
}

func newList(items []list.Item) list.Model {
	l := list.New(items, newRankDelegate(), 0, 0)
	l.Title = "Ranking"
	// The screen renders its own title, status line and help.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	// Search is owned by the controller; the list's fuzzy filter would bypass it.
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("beer", "beers")
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style aliases.
	l.KeyMap.CursorUp.SetKeys(append(append([]string{}, l.KeyMap.CursorUp.Keys()...), "ctrl+p")...)
	l.KeyMap.CursorDown.SetKeys(append(append([]string{}, l.KeyMap.CursorDown.Keys()...), "ctrl+n")...)
	// "f" is a sort key here, not next page.
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "d")
	return l
}

// renderPercentBar draws a fixed-width bar filled to pct (clamped to 0..100).
func renderPercentBar(pct float64, width int, fill lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}
	ratio := pct / 100
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filledN := int(math.Round(ratio * float64(width)))

	filled := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat(glyphBarFilled(), filledN))
	empty := lipgloss.NewStyle().Foreground(colorBarEmpty).Render(strings.Repeat(glyphBarEmpty(), width-filledN))
	return filled + empty
}
