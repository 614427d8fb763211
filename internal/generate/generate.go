// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate orchestrates the documentation pipeline: discover source
// files, extract each one, drop empty modules, and emit the JSON-LD tree.
// Processing is single-threaded and single-pass; one malformed file is
// logged and skipped, never aborting the run.
package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/gleamdoc/internal/discover"
	"github.com/pdiddy/gleamdoc/internal/emit"
	"github.com/pdiddy/gleamdoc/internal/extract"
	"github.com/pdiddy/gleamdoc/pkg/types"
)

// Summary holds counts from one pipeline run.
type Summary struct {
	Modules   int
	Functions int
	Failed    int
}

// Extract discovers and parses all source files under the configured tree,
// returning the modules that contain at least one extracted function, in
// sorted discovery order. Per-file failures are reported on w and skipped.
// A missing scan directory is the one fatal error.
func Extract(cfg types.GenerateConfig, w io.Writer) ([]types.Module, Summary, error) {
	scanDir := filepath.Join(cfg.SourceDir, cfg.Language)
	if _, err := os.Stat(scanDir); err != nil {
		return nil, Summary{}, fmt.Errorf("source directory: %w", err)
	}

	files, err := discover.Files(scanDir, cfg.Extension)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("discovering files: %w", err)
	}

	var modules []types.Module
	var summary Summary

	for _, rel := range files {
		path := filepath.Join(scanDir, rel)

		// Module names are dotted paths relative to the source root, so
		// the language namespace directory stays in the name.
		moduleName := extract.ModuleName(filepath.Join(cfg.Language, rel), cfg.Extension)

		m, err := extract.ParseFile(path, moduleName, cfg.Language)
		if err != nil {
			fmt.Fprintf(w, "Error parsing %s: %v\n", path, err)
			summary.Failed++
			continue
		}
		if len(m.Functions) == 0 {
			continue
		}

		modules = append(modules, m)
		summary.Modules++
		summary.Functions += len(m.Functions)
	}

	return modules, summary, nil
}

// Run executes the full pipeline and writes the index document, the static
// type catalog, and one document per module into cfg.OutputDir. Progress
// lines go to w, one per generated file.
func Run(cfg types.GenerateConfig, defs []types.TypeDefinition, w io.Writer) (Summary, error) {
	modules, summary, err := Extract(cfg, w)
	if err != nil {
		return summary, err
	}

	ctx := emit.NewContext(cfg)
	typesFile := cfg.Language + "/" + cfg.Language + "-types.jsonld"

	indexDoc := emit.BuildIndexDoc(ctx, modules, typesFile)
	if err := emit.WriteDoc(filepath.Join(cfg.OutputDir, "docs.jsonld"), indexDoc); err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "Generated docs.jsonld with %d modules\n", len(modules))

	catalogDoc := emit.BuildCatalogDoc(ctx, defs)
	if err := emit.WriteDoc(filepath.Join(cfg.OutputDir, filepath.FromSlash(typesFile)), catalogDoc); err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "Generated %s\n", typesFile)

	for _, m := range modules {
		moduleFile := emit.ModuleFile(m.Name)
		doc := emit.BuildModuleDoc(ctx, m)
		if err := emit.WriteDoc(filepath.Join(cfg.OutputDir, filepath.FromSlash(moduleFile)), doc); err != nil {
			return summary, err
		}
		fmt.Fprintf(w, "Generated %s with %d functions\n", moduleFile, len(m.Functions))
	}

	return summary, nil
}
