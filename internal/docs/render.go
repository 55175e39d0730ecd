package docs

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

var (
	renderersMu sync.Mutex
	// Keyed by style + wrap width. Fixed styles avoid glamour's auto-style
	// terminal queries, which can block inside the alt screen.
	renderers = map[string]*glamour.TermRenderer{}
)

// Render renders markdown for a terminal of the given width. style is "light",
// "dark" or "notty"; anything else means dark. On renderer errors the raw
// markdown is returned.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	style = normalizeStyle(style)
	key := style + ":" + strconv.Itoa(width)

	renderersMu.Lock()
	defer renderersMu.Unlock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(styleConfig(style)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		renderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func normalizeStyle(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case styles.LightStyle:
		return styles.LightStyle
	case styles.NoTTYStyle, "ascii", "plain":
		return styles.NoTTYStyle
	default:
		return styles.DarkStyle
	}
}

func styleConfig(style string) ansi.StyleConfig {
	var cfg ansi.StyleConfig
	switch style {
	case styles.LightStyle:
		cfg = styles.LightStyleConfig
	case styles.NoTTYStyle:
		cfg = styles.NoTTYStyleConfig
	default:
		cfg = styles.DarkStyleConfig
	}
	// Help text sits inside a bordered box; drop the outer document margin.
	zero := uint(0)
	cfg.Document.Margin = &zero
	return cfg
}
