package tui

import (
	"fmt"
	"io"
	"strings"

	"beerrank-cli/internal/ranking"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	rowLabelWidth = len("Popularity ")
	maxBarWidth   = 30
	minBarWidth   = 8
)

// rankDelegate renders a row as three lines: rank + name, fame bar, popularity bar.
type rankDelegate struct {
	name     lipgloss.Style
	selector lipgloss.Style
}

func newRankDelegate() rankDelegate {
	return rankDelegate{
		name:     lipgloss.NewStyle().Bold(true),
		selector: lipgloss.NewStyle().Foreground(colorAccent),
	}
}

func (d rankDelegate) Height() int  { return 3 }
func (d rankDelegate) Spacing() int { return 1 }
func (d rankDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rankDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(rankRow)
	if !ok || row.item == nil {
		return
	}
	contentW := m.Width()
	if contentW < 20 {
		contentW = 20
	}

	gutter := " "
	if index == m.Index() {
		gutter = d.selector.Render(glyphSelected())
	}

	medal := ranking.RankLabel(index)
	rank := fmt.Sprintf("Rank #%d", index+1)
	if c, ok := medalColor(medal); ok {
		rank = lipgloss.NewStyle().Bold(true).Foreground(c).Render(rank)
	} else {
		rank = styleMuted().Render(rank)
	}
	head := gutter + " " + glyphMedal(medal) + " " + rank + "  " + d.name.Render(row.item.Name)

	barW := contentW - len("   ") - rowLabelWidth - len(" 100.0%")
	if barW > maxBarWidth {
		barW = maxBarWidth
	}
	if barW < minBarWidth {
		barW = minBarWidth
	}
	fame := renderMetricLine(gutter, "Fame", row.item.FamePct, barW, lipgloss.Color(ranking.FameColor(row.item.FamePct)))
	pop := renderMetricLine(gutter, "Popularity", row.item.PopularityPct, barW, lipgloss.Color(ranking.PopularityColor(row.item.PopularityPct)))

	lines := []string{head, fame, pop}
	for i, ln := range lines {
		if xansi.StringWidth(ln) > contentW {
			lines[i] = xansi.Truncate(ln, contentW, glyphEllipsis())
		}
	}
	fmt.Fprint(w, strings.Join(lines, "\n"))
}

func renderMetricLine(gutter, label string, pct float64, barW int, fill lipgloss.TerminalColor) string {
	lbl := styleMuted().Render(label + strings.Repeat(" ", rowLabelWidth-len(label)))
	return gutter + "  " + lbl + renderPercentBar(pct, barW, fill) + " " + ranking.FormatPct(pct)
}
