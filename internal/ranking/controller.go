// Package ranking owns the in-memory item list behind the ranking screen:
// the canonical payload, the filtered/sorted working view, and the search and
// sort state that produced it.
package ranking

import (
	"sort"
	"strings"

	"beerrank-cli/internal/model"

	"golang.org/x/text/cases"
)

type SortKey int

const (
	SortNone SortKey = iota
	SortFame
	SortPopularity
)

func (k SortKey) String() string {
	switch k {
	case SortFame:
		return "fame"
	case SortPopularity:
		return "popularity"
	default:
		return "none"
	}
}

// ParseSortKey accepts the CLI spellings of a sort key.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fame", "famepct":
		return SortFame, true
	case "popularity", "pop", "popularitypct":
		return SortPopularity, true
	default:
		return SortNone, false
	}
}

type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

func (o SortOrder) flip() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

type State struct {
	Search string
	Key    SortKey
	Order  SortOrder
}

// Controller is not safe for concurrent use; the TUI drives it from the
// bubbletea update loop only.
type Controller struct {
	canonical []*model.Item
	working   []*model.Item
	state     State
}

func NewController() *Controller {
	return &Controller{}
}

// Load takes the first non-empty payload. Later calls are ignored so a late or
// duplicate response can't replace the list the user is already working with.
func (c *Controller) Load(items []model.Item) bool {
	if len(c.canonical) > 0 {
		return false
	}
	c.canonical = make([]*model.Item, len(items))
	for i := range items {
		it := items[i]
		c.canonical[i] = &it
	}
	c.working = c.canonicalCopy()
	return len(c.canonical) > 0
}

// SetSearch filters canonical by case-insensitive substring. A search always
// restarts from canonical order, dropping any earlier sort of the view.
func (c *Controller) SetSearch(text string) {
	c.state.Search = text
	if strings.TrimSpace(text) == "" {
		c.working = c.canonicalCopy()
		return
	}

	fold := cases.Fold()
	needle := fold.String(text)
	out := make([]*model.Item, 0, len(c.canonical))
	for _, it := range c.canonical {
		if strings.Contains(fold.String(it.Name), needle) {
			out = append(out, it)
		}
	}
	c.working = out
}

// SortBy stable-sorts the current view and then flips the direction for the
// next call. The direction is shared by both keys: fame ascending followed by
// popularity sorts popularity descending. Product has not confirmed this, so it
// stays as-is until they do.
func (c *Controller) SortBy(key SortKey) {
	value, ok := sortValue(key)
	if !ok {
		return
	}
	desc := c.state.Order == Descending
	sorted := append([]*model.Item(nil), c.working...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return value(sorted[i]) > value(sorted[j])
		}
		return value(sorted[i]) < value(sorted[j])
	})
	c.working = sorted
	c.state.Order = c.state.Order.flip()
	c.state.Key = key
}

func (c *Controller) Clear() {
	c.working = c.canonicalCopy()
	c.state = State{}
}

func (c *Controller) Working() []*model.Item   { return c.working }
func (c *Controller) Canonical() []*model.Item { return c.canonical }
func (c *Controller) State() State             { return c.state }
func (c *Controller) Len() int                 { return len(c.working) }
func (c *Controller) Loaded() bool             { return len(c.canonical) > 0 }

func (c *Controller) canonicalCopy() []*model.Item {
	return append([]*model.Item(nil), c.canonical...)
}

func sortValue(key SortKey) (func(*model.Item) float64, bool) {
	switch key {
	case SortFame:
		return func(it *model.Item) float64 { return it.FamePct }, true
	case SortPopularity:
		return func(it *model.Item) float64 { return it.PopularityPct }, true
	default:
		return nil, false
	}
}
