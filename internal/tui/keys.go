package tui

import (
	"beerrank-cli/internal/ranking"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Search         key.Binding
	Blur           key.Binding
	SortFame       key.Binding
	SortPopularity key.Binding
	Clear          key.Binding
	Help           key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:           key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),
		SortFame:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fame")),
		SortPopularity: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "popularity")),
		Clear:          key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// shortHelp labels the sort keys with the direction the next press will use;
// it is the same for both keys.
func (k keyMap) shortHelp(searching bool, next ranking.SortOrder) []key.Binding {
	if searching {
		return []key.Binding{k.Blur, k.ForceQuit}
	}
	arrow := glyphOrder(next)
	fame := k.SortFame
	fame.SetHelp("f", "fame "+arrow)
	pop := k.SortPopularity
	pop.SetHelp("p", "popularity "+arrow)
	return []key.Binding{k.Search, fame, pop, k.Clear, k.Help, k.Quit}
}
