// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/gleamdoc/pkg/types"
)

// IndexID is the node identifier of the documentation index.
const IndexID = "ex:docs_index"

// NewContext builds the shared document context from the configured
// vocabulary URIs.
func NewContext(cfg types.GenerateConfig) Context {
	return Context{Vocab: cfg.VocabURI, Ex: cfg.ExampleURI}
}

// BuildModuleDoc assembles the JSON-LD document for one module: a module
// node followed by one function node per function, in source order.
// Function ids are "ex:<module_id>_<function_name>"; two functions sharing
// a name therefore share an id. That collision is inherited behavior the
// published documents already exhibit.
func BuildModuleDoc(ctx Context, m types.Module) Document {
	moduleID := ModuleID(m.Name)

	functionNodes := make([]any, 0, len(m.Functions))
	refs := make([]Ref, 0, len(m.Functions))
	for _, fn := range m.Functions {
		if fn.Parameters == nil {
			fn.Parameters = []types.Parameter{}
		}
		if fn.Examples == nil {
			fn.Examples = []string{}
		}
		id := fmt.Sprintf("ex:%s_%s", moduleID, fn.Name)
		functionNodes = append(functionNodes, FunctionNode{
			ID:         id,
			Type:       "Function",
			Name:       fn.Name,
			Module:     m.Name,
			Purpose:    fn.Purpose,
			Parameters: fn.Parameters,
			ReturnType: fn.ReturnType,
			WhyHelpful: fn.WhyHelpful,
			Examples:   fn.Examples,
		})
		refs = append(refs, Ref{ID: id})
	}

	moduleNode := ModuleNode{
		ID:          fmt.Sprintf("ex:%s_module", moduleID),
		Type:        "Module",
		Name:        m.Name,
		Description: m.Description,
		Functions:   refs,
	}

	graph := append([]any{moduleNode}, functionNodes...)
	return Document{Context: ctx, Graph: graph}
}

// BuildIndexDoc assembles the documentation index listing every emitted
// module with its display name, output file, and function count, plus the
// fixed reference to the type-catalog file.
func BuildIndexDoc(ctx Context, modules []types.Module, typesFile string) Document {
	refs := make([]ModuleRef, 0, len(modules))
	for _, m := range modules {
		refs = append(refs, ModuleRef{
			ID:            fmt.Sprintf("ex:%s_module", ModuleID(m.Name)),
			Name:          m.Name,
			File:          ModuleFile(m.Name),
			FunctionCount: len(m.Functions),
		})
	}

	return Document{
		Context: ctx,
		Graph: []any{IndexNode{
			ID:        IndexID,
			Type:      "DocumentationIndex",
			Modules:   refs,
			TypesFile: typesFile,
		}},
	}
}

// BuildCatalogDoc assembles the static type-catalog document. Catalog
// generation does not depend on any parsed input.
func BuildCatalogDoc(ctx Context, defs []types.TypeDefinition) Document {
	graph := make([]any, 0, len(defs))
	for _, def := range defs {
		graph = append(graph, TypeNode{
			ID:           "ex:" + def.Name,
			Type:         "Type",
			Name:         def.Name,
			Description:  def.Description,
			Constructors: def.Constructors,
		})
	}
	return Document{Context: ctx, Graph: graph}
}

// WriteDoc serializes doc with two-space indentation and writes it to path
// in one whole-file write, creating intermediate directories as needed.
func WriteDoc(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
