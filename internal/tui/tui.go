package tui

import (
	"log/slog"
	"time"

	"beerrank-cli/internal/source"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Loader        source.Loader
	Logger        *slog.Logger
	InitialSearch string
	// Theme is "auto", "light" or "dark".
	Theme string
	// Glyphs is "unicode" or "ascii".
	Glyphs  string
	Timeout time.Duration
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
