// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across the gleamdoc pipeline:
// modules, functions, parameters, the static type catalog, and stage
// configuration.
package types

// Parameter is a single function parameter in declaration order.
type Parameter struct {
	// Name is the binding name used inside the function body.
	Name string `json:"name" yaml:"name"`

	// Label is the external argument label, present only when the
	// declaration uses a labelled form distinct from the binding name.
	// Serialized as null when absent.
	Label *string `json:"label" yaml:"label,omitempty"`

	// Type is the free-text type expression, which may contain nested
	// generic or function-type syntax (e.g. "List(Result(a, e))").
	Type string `json:"type" yaml:"type"`
}

// Function describes one exported function extracted from a module.
// Name and ReturnType are always non-empty; declarations that cannot be
// parsed into both are never materialized as a Function.
type Function struct {
	// Name is the function identifier following the declaration keyword.
	Name string `json:"name" yaml:"name"`

	// Module is the dotted name of the owning module.
	Module string `json:"module" yaml:"module"`

	// Purpose is the first non-heading line of the documentation block.
	Purpose string `json:"purpose" yaml:"purpose"`

	// Parameters lists the parsed parameters in source order.
	Parameters []Parameter `json:"parameters" yaml:"parameters"`

	// ReturnType is the trimmed text between "->" and the body brace.
	ReturnType string `json:"returnType" yaml:"return_type"`

	// WhyHelpful is a longer rationale sentence mined from the
	// documentation block. May be empty.
	WhyHelpful string `json:"whyHelpful" yaml:"why_helpful"`

	// Examples holds up to four deduplicated one-line code examples in
	// order of appearance.
	Examples []string `json:"examples" yaml:"examples"`
}

// Module is the documentation unit for one source file. Modules with no
// extracted functions are dropped before emission.
type Module struct {
	// Name is the dotted module path derived from the file location
	// (e.g. "gleam/list.gleam" becomes "gleam.list").
	Name string `json:"name" yaml:"name"`

	// Description is the first paragraph of the module-level comment
	// block. May be empty.
	Description string `json:"description" yaml:"description"`

	// Functions lists extracted functions in source order.
	Functions []Function `json:"functions" yaml:"functions"`
}

// TypeConstructor is one variant of a catalog type.
type TypeConstructor struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Parameters holds ordered type-parameter placeholders. A nil pointer
	// omits the key entirely; a pointer to an empty slice serializes as [].
	// The distinction is part of the published catalog shape.
	Parameters *[]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// TypeDefinition is one entry of the static, hand-authored type catalog.
// The catalog is configuration data, not derived from any source file.
type TypeDefinition struct {
	Name         string            `json:"name" yaml:"name"`
	Description  string            `json:"description" yaml:"description"`
	Constructors []TypeConstructor `json:"constructors" yaml:"constructors"`
}
