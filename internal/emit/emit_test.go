package emit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/gleamdoc/pkg/types"
)

var testCtx = Context{
	Vocab: "https://aalang.org/spec",
	Ex:    "https://aalang.org/example/",
}

func testModule() types.Module {
	with := "with"
	return types.Module{
		Name:        "gleam.bool",
		Description: "A module for working with booleans.",
		Functions: []types.Function{
			{
				Name:       "negate",
				Module:     "gleam.bool",
				Purpose:    "Returns the opposite bool value.",
				Parameters: []types.Parameter{{Name: "bool", Type: "Bool"}},
				ReturnType: "Bool",
				Examples:   []string{"negate(True)"},
			},
			{
				Name:   "compare",
				Module: "gleam.bool",
				Parameters: []types.Parameter{
					{Name: "a", Type: "Bool"},
					{Name: "b", Label: &with, Type: "Bool"},
				},
				ReturnType: "Order",
			},
		},
	}
}

func TestModuleID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"gleam.bool", "gleam_bool"},
		{"gleam.dynamic.decode", "gleam_dynamic_decode"},
		{"gleam/odd", "gleam_odd"},
	}
	for _, tt := range tests {
		if got := ModuleID(tt.name); got != tt.want {
			t.Errorf("ModuleID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestModuleFile(t *testing.T) {
	if got := ModuleFile("gleam.string_tree"); got != "gleam/string_tree.jsonld" {
		t.Errorf("ModuleFile = %q", got)
	}
}

func TestBuildModuleDoc(t *testing.T) {
	doc := BuildModuleDoc(testCtx, testModule())

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.Context["@vocab"] != "https://aalang.org/spec" {
		t.Errorf("@vocab = %q", decoded.Context["@vocab"])
	}
	if len(decoded.Graph) != 3 {
		t.Fatalf("got %d graph nodes, want 3", len(decoded.Graph))
	}

	moduleNode := decoded.Graph[0]
	if moduleNode["@id"] != "ex:gleam_bool_module" {
		t.Errorf("module @id = %v", moduleNode["@id"])
	}
	if moduleNode["@type"] != "Module" {
		t.Errorf("module @type = %v", moduleNode["@type"])
	}

	fnNode := decoded.Graph[1]
	if fnNode["@id"] != "ex:gleam_bool_negate" {
		t.Errorf("function @id = %v", fnNode["@id"])
	}
	if fnNode["returnType"] != "Bool" {
		t.Errorf("returnType = %v", fnNode["returnType"])
	}

	// A parameter without a label still carries the key, as null.
	params, ok := fnNode["parameters"].([]any)
	if !ok || len(params) != 1 {
		t.Fatalf("parameters = %v", fnNode["parameters"])
	}
	p := params[0].(map[string]any)
	if label, present := p["label"]; !present || label != nil {
		t.Errorf("label = %v (present=%v), want present null", label, present)
	}

	// Nil example lists serialize as [], not null.
	if _, ok := decoded.Graph[2]["examples"].([]any); !ok {
		t.Errorf("examples = %v, want empty list", decoded.Graph[2]["examples"])
	}
}

func TestBuildIndexDoc(t *testing.T) {
	doc := BuildIndexDoc(testCtx, []types.Module{testModule()}, "gleam/gleam-types.jsonld")

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Graph []struct {
			ID      string `json:"@id"`
			Type    string `json:"@type"`
			Modules []struct {
				ID            string `json:"@id"`
				Name          string `json:"name"`
				File          string `json:"file"`
				FunctionCount int    `json:"functionCount"`
			} `json:"modules"`
			TypesFile string `json:"typesFile"`
		} `json:"@graph"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if len(decoded.Graph) != 1 {
		t.Fatalf("got %d graph nodes, want 1", len(decoded.Graph))
	}
	node := decoded.Graph[0]
	if node.ID != "ex:docs_index" || node.Type != "DocumentationIndex" {
		t.Errorf("index node = %+v", node)
	}
	if node.TypesFile != "gleam/gleam-types.jsonld" {
		t.Errorf("typesFile = %q", node.TypesFile)
	}
	if len(node.Modules) != 1 {
		t.Fatalf("got %d module refs, want 1", len(node.Modules))
	}
	ref := node.Modules[0]
	if ref.ID != "ex:gleam_bool_module" || ref.File != "gleam/bool.jsonld" || ref.FunctionCount != 2 {
		t.Errorf("module ref = %+v", ref)
	}
}

func TestBuildCatalogDoc(t *testing.T) {
	defs := []types.TypeDefinition{
		{
			Name:         "Order",
			Description:  "Represents the ordering relationship between two values.",
			Constructors: []types.TypeConstructor{{Name: "Lt", Description: "Less than"}},
		},
	}
	doc := BuildCatalogDoc(testCtx, defs)

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Graph []map[string]any `json:"@graph"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Graph[0]["@id"] != "ex:Order" {
		t.Errorf("@id = %v", decoded.Graph[0]["@id"])
	}

	// A constructor without declared parameters omits the key entirely.
	ctors := decoded.Graph[0]["constructors"].([]any)
	ctor := ctors[0].(map[string]any)
	if _, present := ctor["parameters"]; present {
		t.Errorf("parameters key unexpectedly present: %v", ctor)
	}
}

func TestWriteDocDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gleam", "bool.jsonld")

	doc := BuildModuleDoc(testCtx, testModule())
	if err := WriteDoc(path, doc); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := WriteDoc(path, BuildModuleDoc(testCtx, testModule())); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("repeated writes produced different bytes")
	}
}
