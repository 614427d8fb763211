package extract

import (
	"path/filepath"
	"strings"
	"testing"
)

const boolSource = `//// A module for working with booleans.

import gleam/order

/// Returns the opposite bool value.
///
/// This function is useful in higher order functions. It flips values.
///
/// ## Examples
///
/// ` + "```gleam" + `
/// negate(True)
/// // -> False
/// ` + "```" + `
pub fn negate(bool: Bool) -> Bool {
  case bool {
    True -> False
    False -> True
  }
}

pub fn no_return_type(b: Bool) {
  case b {
    _ -> Nil
  }
}

/// Compares two bools.
pub fn compare(a: Bool, with b: Bool) -> Order {
  order.Eq
}
`

func TestParse(t *testing.T) {
	m := Parse(boolSource, "gleam.bool", "gleam")

	if m.Name != "gleam.bool" {
		t.Errorf("Name = %q, want %q", m.Name, "gleam.bool")
	}
	if m.Description != "A module for working with booleans." {
		t.Errorf("Description = %q", m.Description)
	}

	// no_return_type has no -> marker and must be silently dropped while
	// its siblings are kept.
	if len(m.Functions) != 2 {
		t.Fatalf("got %d functions, want 2: %+v", len(m.Functions), m.Functions)
	}

	negate := m.Functions[0]
	if negate.Name != "negate" {
		t.Errorf("Functions[0].Name = %q, want negate", negate.Name)
	}
	if negate.Module != "gleam.bool" {
		t.Errorf("negate.Module = %q", negate.Module)
	}
	if negate.Purpose != "Returns the opposite bool value." {
		t.Errorf("negate.Purpose = %q", negate.Purpose)
	}
	if negate.WhyHelpful != "This function is useful in higher order functions. It flips values." {
		t.Errorf("negate.WhyHelpful = %q", negate.WhyHelpful)
	}
	if negate.ReturnType != "Bool" {
		t.Errorf("negate.ReturnType = %q", negate.ReturnType)
	}
	if len(negate.Examples) != 1 || negate.Examples[0] != "negate(True)" {
		t.Errorf("negate.Examples = %v", negate.Examples)
	}
	if len(negate.Parameters) != 1 || negate.Parameters[0].Name != "bool" {
		t.Errorf("negate.Parameters = %+v", negate.Parameters)
	}

	compare := m.Functions[1]
	if compare.Name != "compare" {
		t.Errorf("Functions[1].Name = %q, want compare", compare.Name)
	}
	if compare.Purpose != "Compares two bools." {
		t.Errorf("compare.Purpose = %q", compare.Purpose)
	}
	if len(compare.Parameters) != 2 {
		t.Fatalf("compare.Parameters = %+v", compare.Parameters)
	}
	if compare.Parameters[0].Label != nil {
		t.Errorf("compare.Parameters[0].Label = %q, want nil", *compare.Parameters[0].Label)
	}
	if compare.Parameters[1].Label == nil || *compare.Parameters[1].Label != "with" {
		t.Errorf("compare.Parameters[1].Label = %v, want with", compare.Parameters[1].Label)
	}
}

func TestParseNoFunctions(t *testing.T) {
	m := Parse("//// Only a description.\n\nimport gleam/int\n", "gleam.doc_only", "gleam")
	if len(m.Functions) != 0 {
		t.Errorf("got %d functions, want 0", len(m.Functions))
	}
	if m.Description != "Only a description." {
		t.Errorf("Description = %q", m.Description)
	}
}

func TestModuleDescriptionMultiLine(t *testing.T) {
	// Continuation lines keep their comment markers, matching the shape
	// downstream consumers already handle.
	src := strings.Join([]string{
		"//// First paragraph line.",
		"//// Second paragraph line.",
		"",
		"//// Not part of the description.",
	}, "\n")

	m := Parse(src, "gleam.x", "gleam")
	want := "First paragraph line.\n//// Second paragraph line."
	if m.Description != want {
		t.Errorf("Description = %q, want %q", m.Description, want)
	}
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"gleam/bool.gleam", "gleam.bool"},
		{"gleam/string_tree.gleam", "gleam.string_tree"},
		{filepath.Join("gleam", "dynamic", "decode.gleam"), "gleam.dynamic.decode"},
	}
	for _, tt := range tests {
		if got := ModuleName(tt.rel, ".gleam"); got != tt.want {
			t.Errorf("ModuleName(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.gleam"), "gleam.nope", "gleam"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
