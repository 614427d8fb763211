// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit assembles extracted documentation into JSON-LD documents and
// writes them to the output tree. Every document shares one vocabulary
// context; node identifiers are derived deterministically from module and
// function names so repeated runs produce byte-identical output.
package emit

import (
	"strings"

	"github.com/pdiddy/gleamdoc/pkg/types"
)

// Context is the JSON-LD @context shared by all emitted documents.
type Context struct {
	Vocab string `json:"@vocab"`
	Ex    string `json:"ex"`
}

// Document is a JSON-LD document: one context plus a flat node graph.
type Document struct {
	Context Context `json:"@context"`
	Graph   []any   `json:"@graph"`
}

// Ref is a bare node reference.
type Ref struct {
	ID string `json:"@id"`
}

// ModuleNode describes one module and references its function nodes.
type ModuleNode struct {
	ID          string `json:"@id"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Functions   []Ref  `json:"functions"`
}

// FunctionNode carries the full extracted record of one function.
type FunctionNode struct {
	ID         string            `json:"@id"`
	Type       string            `json:"@type"`
	Name       string            `json:"name"`
	Module     string            `json:"module"`
	Purpose    string            `json:"purpose"`
	Parameters []types.Parameter `json:"parameters"`
	ReturnType string            `json:"returnType"`
	WhyHelpful string            `json:"whyHelpful"`
	Examples   []string          `json:"examples"`
}

// ModuleRef is an index entry pointing at one emitted module file.
type ModuleRef struct {
	ID            string `json:"@id"`
	Name          string `json:"name"`
	File          string `json:"file"`
	FunctionCount int    `json:"functionCount"`
}

// IndexNode is the single node of the documentation index.
type IndexNode struct {
	ID        string      `json:"@id"`
	Type      string      `json:"@type"`
	Modules   []ModuleRef `json:"modules"`
	TypesFile string      `json:"typesFile"`
}

// TypeNode is one entry of the static type catalog.
type TypeNode struct {
	ID           string                  `json:"@id"`
	Type         string                  `json:"@type"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	Constructors []types.TypeConstructor `json:"constructors"`
}

var idReplacer = strings.NewReplacer(".", "_", "/", "_")

// ModuleID flattens a dotted module name into an identifier fragment.
func ModuleID(name string) string {
	return idReplacer.Replace(name)
}

// ModuleFile returns the output path of a module document relative to the
// output root: dots become path separators and the .jsonld suffix is added.
func ModuleFile(name string) string {
	return strings.ReplaceAll(name, ".", "/") + ".jsonld"
}
