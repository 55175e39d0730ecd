package ranking

import (
	"fmt"
	"strconv"
)

// Display helpers are pure functions of an item's value or its position in the
// working list. Nothing here is cached on the item.

type Medal int

const (
	MedalNone Medal = iota
	MedalFirst
	MedalSecond
	MedalThird
)

func (m Medal) String() string {
	switch m {
	case MedalFirst:
		return "first"
	case MedalSecond:
		return "second"
	case MedalThird:
		return "third"
	default:
		return ""
	}
}

func RankLabel(pos int) Medal {
	switch pos {
	case 0:
		return MedalFirst
	case 1:
		return MedalSecond
	case 2:
		return MedalThird
	default:
		return MedalNone
	}
}

type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMid:
		return "mid"
	default:
		return "low"
	}
}

func ClassifyPct(pct float64) Tier {
	switch {
	case pct > 80:
		return TierHigh
	case pct > 50:
		return TierMid
	default:
		return TierLow
	}
}

// Palette maps tiers to hex colors. Each percentage field has its own.
type Palette struct {
	High string
	Mid  string
	Low  string
}

func (p Palette) Color(t Tier) string {
	switch t {
	case TierHigh:
		return p.High
	case TierMid:
		return p.Mid
	default:
		return p.Low
	}
}

var (
	FamePalette       = Palette{High: "#4caf50", Mid: "#ffc107", Low: "#f44336"}
	PopularityPalette = Palette{High: "#2196f3", Mid: "#ff9800", Low: "#e91e63"}
)

func FameColor(pct float64) string       { return FamePalette.Color(ClassifyPct(pct)) }
func PopularityColor(pct float64) string { return PopularityPalette.Color(ClassifyPct(pct)) }

// AppliedOrder is the direction the last sort used. Order has already been
// flipped for the next call by the time anyone reads the state.
func AppliedOrder(st State) SortOrder {
	return st.Order.flip()
}

// NextOrder is the direction the next SortBy will use.
func NextOrder(st State) SortOrder {
	return st.Order
}

// StatusLine reports the stored direction, which SortBy has already flipped:
// after the first ascending sort it reads "(Descending)". The screen has
// always read this way; keep it until product says otherwise.
func StatusLine(st State) string {
	if st.Key == SortNone {
		return "No Sorting Applied"
	}
	return fmt.Sprintf("Sorted by: %s (%s)", KeyTitle(st.Key), OrderTitle(st.Order))
}

// KeyTitle is the human label for a sort key ("Fame", "Popularity").
func KeyTitle(k SortKey) string {
	if k == SortFame {
		return "Fame"
	}
	return "Popularity"
}

func OrderTitle(o SortOrder) string {
	if o == Descending {
		return "Descending"
	}
	return "Ascending"
}

// FormatPct prints a percentage without trailing zeros: 95 -> "95%", 41.5 -> "41.5%".
func FormatPct(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}
