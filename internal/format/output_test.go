package format

import (
	"bytes"
	"strconv"
	"testing"
)

type row struct {
	Name    string  `json:"name"`
	FamePct float64 `json:"famePct"`
}

type rows []row

func (r rows) Header() []string { return []string{"Name", "Fame"} }
func (r rows) Rows() [][]string {
	out := make([][]string, 0, len(r))
	for _, x := range r {
		out = append(out, []string{x.Name, strconv.FormatFloat(x.FamePct, 'f', -1, 64) + "%"})
	}
	return out
}

func TestWrite_JSON(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, rows{{Name: "Bud Light", FamePct: 95}}, "json", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `[{"name":"Bud Light","famePct":95}]` + "\n"
	if b.String() != want {
		t.Fatalf("json:\n got: %q\nwant: %q", b.String(), want)
	}
}

func TestWrite_EDN(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, map[string]any{"items": rows{{Name: "Pale Ale", FamePct: 41.5}}, "count": 1}, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `{:count 1 :items [{:fame-pct 41.5 :name "Pale Ale"}]}` + "\n"
	if b.String() != want {
		t.Fatalf("edn:\n got: %q\nwant: %q", b.String(), want)
	}
}

func TestWrite_EDNPretty(t *testing.T) {
	var b bytes.Buffer
	if err := WriteEDN(&b, map[string]any{"xs": []int{1, 2}, "empty": []int{}}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "{\n  :empty []\n  :xs [\n    1\n    2\n  ]\n}\n"
	if b.String() != want {
		t.Fatalf("edn pretty:\n got: %q\nwant: %q", b.String(), want)
	}
}

func TestWrite_Table(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, rows{{Name: "Bud Light", FamePct: 95}, {Name: "IPA", FamePct: 7.5}}, "table", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "" +
		"Name       Fame\n" +
		"Bud Light  95%\n" +
		"IPA        7.5%\n"
	if b.String() != want {
		t.Fatalf("table:\n got: %q\nwant: %q", b.String(), want)
	}
}

func TestWrite_Errors(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, 1, "yaml", false); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if err := Write(&b, 1, "table", false); err == nil {
		t.Fatalf("expected table error for non-tabular value")
	}
}

func TestEDNKeyword(t *testing.T) {
	tests := map[string]string{
		"name":          "name",
		"famePct":       "fame-pct",
		"popularityPct": "popularity-pct",
		"rank_label":    "rank-label",
		"sort key":      "sort-key",
	}
	for in, want := range tests {
		if got := ednKeyword(in); got != want {
			t.Fatalf("ednKeyword(%q): got %q want %q", in, got, want)
		}
	}
}
