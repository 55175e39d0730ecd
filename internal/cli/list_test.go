package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const beersJSON = `[
  {"DrinkName": "Pale Ale", "FamePct": 70, "PopularityPct": 20},
  {"DrinkName": "Stout", "FamePct": "90", "PopularityPct": 10},
  {"DrinkName": "Lager Lager", "FamePct": 30, "PopularityPct": 80},
  {"DrinkName": null, "FamePct": 99}
]`

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func writeSource(t *testing.T) string {
	t.Helper()
	t.Setenv("BEERRANK_CONFIG_DIR", t.TempDir())
	p := filepath.Join(t.TempDir(), "beers.json")
	if err := os.WriteFile(p, []byte(beersJSON), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return p
}

func mustList(t *testing.T, args ...string) listData {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: beerrank %v\nerr: %v\nstderr:\n%s", args, err, string(stderr))
	}
	var env struct {
		Data listData `json:"data"`
	}
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout: %v\nstdout:\n%s", err, string(stdout))
	}
	return env.Data
}

func rowNames(d listData) []string {
	out := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		out = append(out, it.Name)
	}
	return out
}

func TestList_CanonicalOrder(t *testing.T) {
	src := writeSource(t)
	d := mustList(t, "--source", src, "list")

	if got := strings.Join(rowNames(d), ","); got != "Pale Ale,Stout,Lager" {
		t.Fatalf("unexpected order: %s", got)
	}
	if d.Count != 3 || d.Total != 3 {
		t.Fatalf("expected 3 of 3; got %d of %d", d.Count, d.Total)
	}
	if d.Status != "No Sorting Applied" || d.Sort != "none" || d.Order != "" {
		t.Fatalf("unexpected state: %+v", d)
	}
	first := d.Items[0]
	if first.Rank != 1 || first.Medal != "first" || first.FameTier != "mid" || first.PopularityTier != "low" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if d.Items[1].FamePct != 90 || d.Items[1].FameTier != "high" {
		t.Fatalf("expected numeric-string fame to be coerced; got %+v", d.Items[1])
	}
}

func TestList_SortsShareOneToggle(t *testing.T) {
	src := writeSource(t)

	d := mustList(t, "--source", src, "list", "--sort", "fame")
	if got := strings.Join(rowNames(d), ","); got != "Lager,Pale Ale,Stout" {
		t.Fatalf("fame ascending: got %s", got)
	}
	// Rows are ascending; status and order show the already-flipped direction.
	if d.Status != "Sorted by: Fame (Descending)" || d.Order != "descending" || d.AppliedOrder != "ascending" {
		t.Fatalf("unexpected state: status=%q order=%s applied=%s", d.Status, d.Order, d.AppliedOrder)
	}

	d = mustList(t, "--source", src, "list", "--sort", "fame", "--sort", "popularity")
	if got := strings.Join(rowNames(d), ","); got != "Lager,Pale Ale,Stout" {
		t.Fatalf("popularity descending: got %s", got)
	}
	if d.Sort != "popularity" || d.AppliedOrder != "descending" || d.Order != "ascending" {
		t.Fatalf("expected popularity applied descending; got sort=%s order=%s applied=%s", d.Sort, d.Order, d.AppliedOrder)
	}
	if d.Status != "Sorted by: Popularity (Ascending)" {
		t.Fatalf("unexpected status: %q", d.Status)
	}
}

func TestList_SearchAndClear(t *testing.T) {
	src := writeSource(t)

	d := mustList(t, "--source", src, "list", "--search", "ALE")
	if got := strings.Join(rowNames(d), ","); got != "Pale Ale" {
		t.Fatalf("search: got %s", got)
	}
	if d.Total != 3 {
		t.Fatalf("expected total to stay 3; got %d", d.Total)
	}

	d = mustList(t, "--source", src, "list", "--search", "ale", "--sort", "fame", "--clear")
	if got := strings.Join(rowNames(d), ","); got != "Pale Ale,Stout,Lager" {
		t.Fatalf("clear: got %s", got)
	}
	if d.Search != "" || d.Sort != "none" {
		t.Fatalf("expected cleared state; got %+v", d)
	}
}

func TestList_TableFormat(t *testing.T) {
	src := writeSource(t)
	stdout, stderr, err := runCLI(t, []string{"--source", src, "--format", "table", "list", "--sort", "popularity"})
	if err != nil {
		t.Fatalf("list failed: %v\nstderr:\n%s", err, string(stderr))
	}
	lines := strings.Split(strings.TrimRight(string(stdout), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows; got %d:\n%s", len(lines), string(stdout))
	}
	if !strings.HasPrefix(lines[0], "RANK") || !strings.Contains(lines[0], "POPULARITY") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "#1") || !strings.Contains(lines[1], "Stout") || !strings.Contains(lines[1], "10%") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}

func TestRoot_NonTerminalPrintsTable(t *testing.T) {
	src := writeSource(t)
	stdout, stderr, err := runCLI(t, []string{"--source", src, "stout"})
	if err != nil {
		t.Fatalf("root failed: %v\nstderr:\n%s", err, string(stderr))
	}
	out := string(stdout)
	if !strings.HasPrefix(out, "RANK") || !strings.Contains(out, "Stout") || strings.Contains(out, "Pale Ale") {
		t.Fatalf("expected filtered table; got:\n%s", out)
	}
}

func TestRoot_NonTerminalHonoursFormatEnv(t *testing.T) {
	src := writeSource(t)
	t.Setenv("BEERRANK_FORMAT", "json")

	d := mustList(t, "--source", src, "stout")
	if got := strings.Join(rowNames(d), ","); got != "Stout" {
		t.Fatalf("expected JSON envelope with Stout; got %s", got)
	}

	stdout, _, err := runCLI(t, []string{"--source", src, "--format", "edn", "stout"})
	if err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "{:data") {
		t.Fatalf("expected explicit --format to win; got %q", string(stdout))
	}
}

func TestList_Errors(t *testing.T) {
	src := writeSource(t)

	_, stderr, err := runCLI(t, []string{"--source", src, "list", "--sort", "abv"})
	if err == nil || !strings.Contains(string(stderr), "unknown sort key") {
		t.Fatalf("expected unknown sort key error; err=%v stderr=%s", err, string(stderr))
	}

	_, stderr, err = runCLI(t, []string{"--source", filepath.Join(t.TempDir(), "missing.json"), "list"})
	if err == nil || !strings.Contains(string(stderr), "load items") {
		t.Fatalf("expected load error; err=%v stderr=%s", err, string(stderr))
	}

	bad := filepath.Join(t.TempDir(), "obj.json")
	if err := os.WriteFile(bad, []byte(`{"DrinkName": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err = runCLI(t, []string{"--source", bad, "list"})
	if err == nil {
		t.Fatalf("expected non-array payload to fail")
	}

	_, _, err = runCLI(t, []string{"--source", src, "--timeout", "soon", "list"})
	if err == nil {
		t.Fatalf("expected invalid --timeout to fail")
	}
}

func TestList_ConfigFileFields(t *testing.T) {
	t.Setenv("BEERRANK_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()
	src := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(src, []byte(`[{"n": "Porter", "f": 12, "p": 34}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "source: " + src + "\nfields:\n  name: n\n  fame: f\n  popularity: p\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	d := mustList(t, "--config", cfgPath, "list")
	if len(d.Items) != 1 || d.Items[0].Name != "Porter" || d.Items[0].FamePct != 12 || d.Items[0].PopularityPct != 34 {
		t.Fatalf("unexpected items: %+v", d.Items)
	}
}

func TestDocs_ListAndRaw(t *testing.T) {
	t.Setenv("BEERRANK_CONFIG_DIR", t.TempDir())

	stdout, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs failed: %v", err)
	}
	if !strings.Contains(string(stdout), "sorting") {
		t.Fatalf("expected topics list; got %s", string(stdout))
	}

	stdout, _, err = runCLI(t, []string{"docs", "keys", "--raw"})
	if err != nil {
		t.Fatalf("docs keys failed: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("expected raw markdown; got %q", string(stdout))
	}

	_, stderr, err := runCLI(t, []string{"docs", "nope"})
	if err == nil || !strings.Contains(string(stderr), "unknown docs topic") {
		t.Fatalf("expected unknown topic error; err=%v stderr=%s", err, string(stderr))
	}
}
