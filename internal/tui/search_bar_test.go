package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	xansi "github.com/charmbracelet/x/ansi"
)

func TestRenderSearchBar_HintWhenIdle(t *testing.T) {
	in := textinput.New()
	in.Prompt = "Search: "

	got := xansi.Strip(renderSearchBar(60, in))
	if !strings.Contains(got, "press / to search") {
		t.Fatalf("expected idle hint; got %q", got)
	}
	if w := xansi.StringWidth(got); w != 60 {
		t.Fatalf("expected bar to fill 60 cells; got %d", w)
	}
}

func TestRenderSearchBar_ShowsValueOnOneLine(t *testing.T) {
	in := textinput.New()
	in.Prompt = "Search: "
	in.SetValue("pale ale")
	in.Focus()

	got := renderSearchBar(40, in)
	if strings.Contains(got, "\n") {
		t.Fatalf("expected a single line; got %q", got)
	}
	plain := xansi.Strip(got)
	if !strings.Contains(plain, "Search: pale ale") {
		t.Fatalf("expected typed value; got %q", plain)
	}
	if w := xansi.StringWidth(got); w > 40 {
		t.Fatalf("expected at most 40 cells; got %d", w)
	}
}
