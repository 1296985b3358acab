package cli

import (
	"strings"
	"testing"
)

func TestRenderTableLayout(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Ingredients",
		Headers: []string{"Name", "Price"},
		Rows: [][]string{
			{"Flour", "€2.00/kg"},
			{"---"},
			{"Total", "€2.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, top, header, header separator, row, separator, row, bottom
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	for _, want := range []string{"Ingredients", "Flour", "€2.00/kg", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Every bordered line has the same display width.
	width := len([]rune(lines[1]))
	for i, line := range lines[1:] {
		if n := len([]rune(line)); n != width {
			t.Errorf("line %d width = %d, want %d: %q", i+1, n, width, line)
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Fatalf("empty table rendered %q", out)
	}
}

func TestRenderHorizontalBarClamps(t *testing.T) {
	out := RenderHorizontalBar("Flour", 20, 10, 5, "200%")
	if strings.Count(out, "█") != 5 {
		t.Fatalf("bar not clamped: %q", out)
	}
	out = RenderHorizontalBar("Sugar", 1, 0, 5, "0%")
	if strings.Contains(out, "█") {
		t.Fatalf("zero max rendered a bar: %q", out)
	}
}

func TestRenderKeyValuesAligns(t *testing.T) {
	out := RenderKeyValues([][2]string{{"Recipes", "3"}, {"Avg price", "$4.00"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if strings.Index(lines[0], "3") != strings.Index(lines[1], "$") {
		t.Fatalf("values not aligned:\n%s", out)
	}
}
