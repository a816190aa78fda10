package palette

import (
	"reflect"
	"testing"
)

func TestAssign_CyclesPalette(t *testing.T) {
	t.Parallel()

	got := Assign([]string{"A", "B", "C"}, []string{"red", "blue"})
	want := Mapping{"A": "red", "B": "blue", "C": "red"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected mapping: got=%v want=%v", got, want)
	}
}

func TestAssign_IsPure(t *testing.T) {
	t.Parallel()

	teams := FirstSeen([]string{"Spurs", "Arsenal", "Spurs", "Everton"})
	colors := []string{"#1", "#2"}

	first := Assign(teams, colors)
	_ = Assign([]string{"Everton"}, []string{"#9"})
	second := Assign(teams, colors)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("assignment changed between calls: %v vs %v", first, second)
	}
	if first["Spurs"] != "#1" || first["Arsenal"] != "#2" || first["Everton"] != "#1" {
		t.Fatalf("unexpected first-seen assignment: %v", first)
	}
}

func TestAssign_EmptyPalette(t *testing.T) {
	t.Parallel()

	if got := Assign([]string{"A"}, nil); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
}

func TestBuiltinCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := Builtin()
	if err != nil {
		t.Fatalf("load builtin catalog: %v", err)
	}

	names := catalog.Names()
	if len(names) != 13 {
		t.Fatalf("expected 13 palettes, got %d", len(names))
	}
	if names[0] != "Plasma" || names[len(names)-1] != "YlOrRd" {
		t.Fatalf("unexpected palette order: %v", names)
	}
	if catalog.DefaultName() != "Plasma" {
		t.Fatalf("unexpected default palette %q", catalog.DefaultName())
	}
	if got := catalog.Resolve("viridis").Name; got != "Viridis" {
		t.Fatalf("expected case-insensitive lookup, got %q", got)
	}
	if got := catalog.Resolve("Rainbow").Name; got != "Plasma" {
		t.Fatalf("expected fallback to Plasma, got %q", got)
	}
}

func TestParseCatalog_RejectsEmptyPalette(t *testing.T) {
	t.Parallel()

	raw := []byte("[[palette]]\nname = \"Empty\"\ncolors = []\n")
	if _, err := ParseCatalog(raw); err == nil {
		t.Fatalf("expected error for palette without colors")
	}
}
