package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"beerrank-cli/internal/docs"
	"beerrank-cli/internal/model"
	"beerrank-cli/internal/ranking"
	"beerrank-cli/internal/source"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type itemsLoadedMsg struct {
	items []model.Item
	took  time.Duration
}

type itemsFailedMsg struct {
	err error
}

// chromeHeight is everything above and below the list: title, search, status,
// blank separators and the help line.
const chromeHeight = 8

type appModel struct {
	ctrl    *ranking.Controller
	loader  source.Loader
	timeout time.Duration
	log     *slog.Logger

	width  int
	height int

	search textinput.Model
	list   list.Model
	keys   keyMap
	help   help.Model

	loading  bool
	showHelp bool
}

func newAppModel(opts Options) appModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := appModel{
		ctrl:    ranking.NewController(),
		loader:  opts.Loader,
		timeout: opts.Timeout,
		log:     logger,
		keys:    newKeyMap(),
		help:    help.New(),
		loading: opts.Loader != nil,
	}

	m.search = textinput.New()
	m.search.Prompt = "Search: "
	m.search.Placeholder = "Search for a drink..."
	m.search.CharLimit = 100
	m.search.Width = 40
	m.search.SetValue(opts.InitialSearch)

	m.list = newList(nil)
	return m
}

// Init issues the one and only fetch.
func (m appModel) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return fetchItems(m.loader, m.timeout)
}

func fetchItems(loader source.Loader, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		start := time.Now()
		items, err := loader.FetchAll(ctx)
		if err != nil {
			return itemsFailedMsg{err: err}
		}
		return itemsLoadedMsg{items: items, took: time.Since(start)}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case itemsLoadedMsg:
		m.loading = false
		if !m.ctrl.Load(msg.items) {
			m.log.Debug("ignored item payload", "count", len(msg.items), "loaded", m.ctrl.Loaded())
			return m, nil
		}
		m.log.Info("items loaded", "count", len(msg.items), "took", msg.took)
		// Anything typed while the fetch was in flight applies now.
		if v := m.search.Value(); v != "" {
			m.ctrl.SetSearch(v)
		}
		return m, m.refreshList()

	case itemsFailedMsg:
		m.loading = false
		m.log.Error("fetch items failed", "error", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q", "enter":
			m.showHelp = false
		}
		return m, nil
	}

	if m.search.Focused() {
		if key.Matches(msg, m.keys.Blur) {
			m.search.Blur()
			return m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if v := m.search.Value(); v != before {
			m.ctrl.SetSearch(v)
			return m, tea.Batch(cmd, m.refreshList())
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.SortFame):
		m.ctrl.SortBy(ranking.SortFame)
		return m, m.refreshList()
	case key.Matches(msg, m.keys.SortPopularity):
		m.ctrl.SortBy(ranking.SortPopularity)
		return m, m.refreshList()
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Clear()
		m.search.SetValue("")
		return m, m.refreshList()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refreshList mirrors the controller's working list into the list widget.
func (m *appModel) refreshList() tea.Cmd {
	cmd := m.list.SetItems(rowsFromItems(m.ctrl.Working()))
	m.list.ResetSelected()
	return cmd
}

func (m *appModel) resize() {
	w := m.width
	if w < 40 {
		w = 40
	}
	h := m.height - chromeHeight
	if h < 4 {
		h = 4
	}
	m.list.SetSize(w, h)
	m.search.Width = w - len(m.search.Prompt) - 4
	m.help.Width = w
}

func (m appModel) View() string {
	w := m.width
	if w < 40 {
		w = 40
	}
	if m.showHelp {
		return m.helpOverlay(w)
	}

	title := styleTitle().Render("Beer Ranking")
	searchLine := renderSearchBar(w, m.search)
	status := styleMuted().Render(m.statusText())

	var body string
	switch {
	case m.loading:
		body = styleMuted().Render("Loading" + glyphEllipsis())
	case m.ctrl.Len() == 0:
		body = styleMuted().Render("No items.")
	default:
		body = m.list.View()
	}

	footer := m.help.ShortHelpView(m.keys.shortHelp(m.search.Focused(), ranking.NextOrder(m.ctrl.State())))
	return strings.Join([]string{title, searchLine, status, body, footer}, "\n\n")
}

func (m appModel) statusText() string {
	st := m.ctrl.State()
	line := ranking.StatusLine(st)
	if m.ctrl.Loaded() {
		line += fmt.Sprintf("  ·  %d of %d", m.ctrl.Len(), len(m.ctrl.Canonical()))
	}
	return line
}

func (m appModel) helpOverlay(w int) string {
	body, _ := docs.Get("keys")
	boxW := w - 8
	if boxW > 72 {
		boxW = 72
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Render(docs.Render(body, boxW-4, markdownStyle()) + "\n\n" + styleMuted().Render("?/esc: close"))
	h := m.height
	if h < lipgloss.Height(box) {
		h = lipgloss.Height(box)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}
