package tui

import (
	"strings"
	"sync"

	"beerrank-cli/internal/ranking"
)

// Some terminals/fonts don't render emoji medals or block characters cleanly,
// so there is an ASCII fallback for every glyph on screen.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// glyphMedal returns the medal for a rank label, padded to glyphMedalWidth
// columns so names line up whether or not a row has a medal.
func glyphMedal(m ranking.Medal) string {
	if glyphs() == glyphSetASCII {
		switch m {
		case ranking.MedalFirst:
			return "1st"
		case ranking.MedalSecond:
			return "2nd"
		case ranking.MedalThird:
			return "3rd"
		default:
			return "   "
		}
	}
	switch m {
	case ranking.MedalFirst:
		return "🥇"
	case ranking.MedalSecond:
		return "🥈"
	case ranking.MedalThird:
		return "🥉"
	default:
		return "  "
	}
}

func glyphBarFilled() string {
	if glyphs() == glyphSetASCII {
		return "#"
	}
	return "█"
}

func glyphBarEmpty() string {
	if glyphs() == glyphSetASCII {
		return "."
	}
	return "░"
}

func glyphSelected() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▌"
}

func glyphOrder(o ranking.SortOrder) string {
	if glyphs() == glyphSetASCII {
		if o == ranking.Descending {
			return "desc"
		}
		return "asc"
	}
	if o == ranking.Descending {
		return "↓"
	}
	return "↑"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "..."
	}
	return "…"
}
