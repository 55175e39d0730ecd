package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"beerrank-cli/internal/format"
	"beerrank-cli/internal/model"
	"beerrank-cli/internal/ranking"

	"github.com/spf13/cobra"
)

type listOptions struct {
	search string
	sorts  []string
	clear  bool
	format string
}

func newListCmd(app *App) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the ranking and print it (search, then sorts in order)",
		Example: strings.TrimSpace(`
  beerrank list --search ale
  beerrank list --sort fame --format table
  # Sorts share one asc/desc toggle: this is popularity descending.
  beerrank list --sort fame --sort popularity
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.search, "search", "", "Case-insensitive name filter")
	cmd.Flags().StringArrayVar(&opts.sorts, "sort", nil, "Sort by fame|popularity (repeatable; each call flips the direction)")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Reset search and sorting after applying them")

	return cmd
}

func runList(cmd *cobra.Command, app *App, opts listOptions) error {
	keys := make([]ranking.SortKey, 0, len(opts.sorts))
	for _, s := range opts.sorts {
		k, ok := ranking.ParseSortKey(s)
		if !ok {
			return writeErr(cmd, errUnknownSortKey(s))
		}
		keys = append(keys, k)
	}

	log := stderrLogger(cmd).With("source", app.cfg.Source)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if d := time.Duration(app.cfg.Timeout); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	items, err := app.cfg.Loader().FetchAll(ctx)
	if err != nil {
		return writeErr(cmd, fmt.Errorf("load items: %w", err))
	}

	ctrl := ranking.NewController()
	if !ctrl.Load(items) {
		log.Warn("source returned no items")
	}
	if opts.search != "" {
		ctrl.SetSearch(opts.search)
	}
	for _, k := range keys {
		ctrl.SortBy(k)
	}
	if opts.clear {
		ctrl.Clear()
	}

	out := app.Format
	if opts.format != "" {
		out = opts.format
	}
	return format.Write(cmd.OutOrStdout(), newListResult(ctrl), out, app.PrettyJSON)
}

type listRow struct {
	Rank           int     `json:"rank"`
	Medal          string  `json:"medal,omitempty"`
	Name           string  `json:"name"`
	FamePct        float64 `json:"famePct"`
	PopularityPct  float64 `json:"popularityPct"`
	FameTier       string  `json:"fameTier"`
	PopularityTier string  `json:"popularityTier"`
}

type listData struct {
	Search string `json:"search"`
	Sort   string `json:"sort"`
	// Order matches Status: the stored direction, already flipped for the
	// next sort. AppliedOrder is the direction the rows are actually in.
	Order        string    `json:"order,omitempty"`
	AppliedOrder string    `json:"appliedOrder,omitempty"`
	Status       string    `json:"status"`
	Count        int       `json:"count"`
	Total        int       `json:"total"`
	Items        []listRow `json:"items"`
}

// listResult is the JSON/EDN envelope; it also prints as a table.
type listResult struct {
	Data listData `json:"data"`
}

func newListResult(ctrl *ranking.Controller) listResult {
	st := ctrl.State()
	d := listData{
		Search: st.Search,
		Sort:   st.Key.String(),
		Status: ranking.StatusLine(st),
		Count:  ctrl.Len(),
		Total:  len(ctrl.Canonical()),
		Items:  make([]listRow, 0, ctrl.Len()),
	}
	if st.Key != ranking.SortNone {
		d.Order = st.Order.String()
		d.AppliedOrder = ranking.AppliedOrder(st).String()
	}
	for i, it := range ctrl.Working() {
		d.Items = append(d.Items, newListRow(i, it))
	}
	return listResult{Data: d}
}

func newListRow(pos int, it *model.Item) listRow {
	r := listRow{
		Rank:           pos + 1,
		Name:           it.Name,
		FamePct:        it.FamePct,
		PopularityPct:  it.PopularityPct,
		FameTier:       ranking.ClassifyPct(it.FamePct).String(),
		PopularityTier: ranking.ClassifyPct(it.PopularityPct).String(),
	}
	if m := ranking.RankLabel(pos); m != ranking.MedalNone {
		r.Medal = m.String()
	}
	return r
}

func (r listResult) Header() []string {
	return []string{"RANK", "NAME", "FAME", "POPULARITY"}
}

func (r listResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.Data.Items))
	for _, it := range r.Data.Items {
		rows = append(rows, []string{
			"#" + strconv.Itoa(it.Rank),
			it.Name,
			ranking.FormatPct(it.FamePct),
			ranking.FormatPct(it.PopularityPct),
		})
	}
	return rows
}
