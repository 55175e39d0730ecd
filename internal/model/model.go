package model

import "strings"

type Item struct {
	Name          string  `json:"name"`
	FamePct       float64 `json:"famePct"`
	PopularityPct float64 `json:"popularityPct"`
}

// CleanName drops repeated whole words from a raw name. Order is kept and the
// first occurrence of each word wins; runs of whitespace collapse to one space.
func CleanName(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return ""
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// NewItem builds an Item from a raw source name. ok is false when nothing is
// left of the name after cleanup.
func NewItem(rawName string, famePct, popularityPct float64) (Item, bool) {
	name := CleanName(rawName)
	if name == "" {
		return Item{}, false
	}
	return Item{Name: name, FamePct: famePct, PopularityPct: popularityPct}, true
}
