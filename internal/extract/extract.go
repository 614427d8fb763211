// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls structured documentation out of annotated source
// files. It is a line-oriented heuristic scanner, not a parser: exported
// declarations and their comment blocks follow a constrained, human-written
// convention, and anything that does not match the expected shape is
// quietly left out of the result.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/gleamdoc/pkg/types"
)

// markers of the documentation comment conventions: //// introduces
// module-level documentation, /// introduces per-declaration documentation.
const (
	moduleDocMarker = "////"
	declDocMarker   = "///"
	declKeyword     = "pub fn "
)

// ParseFile reads one source file and extracts its module documentation and
// exported functions. moduleName is the dotted name derived from the file's
// location; fenceTag is the language tag on example code fences ("gleam").
// A read failure is the only error path; unparseable declarations inside
// the file are dropped silently.
func ParseFile(path, moduleName, fenceTag string) (types.Module, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Module{}, fmt.Errorf("reading source: %w", err)
	}
	return Parse(string(content), moduleName, fenceTag), nil
}

// Parse extracts a module from raw source text. See ParseFile.
func Parse(content, moduleName, fenceTag string) types.Module {
	lines := strings.Split(content, "\n")

	m := types.Module{
		Name:        moduleName,
		Description: moduleDescription(lines),
	}

	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), declKeyword) {
			continue
		}

		// Collect the contiguous run of /// lines immediately above the
		// declaration. The run may be empty.
		var docLines []string
		for j := i - 1; j >= 0; j-- {
			if !strings.HasPrefix(strings.TrimSpace(lines[j]), declDocMarker) {
				break
			}
			docLines = append([]string{lines[j]}, docLines...)
		}

		sig, ok := parseSignature(lines, i)
		if !ok {
			continue
		}

		docText := strings.Join(docLines, "\n")

		fn := types.Function{
			Name:       sig.name,
			Module:     moduleName,
			Purpose:    purpose(docLines),
			Parameters: sig.parameters,
			ReturnType: sig.returnType,
			WhyHelpful: whyHelpful(docText, docLines),
			Examples:   examples(docText, fenceTag),
		}
		m.Functions = append(m.Functions, fn)
	}

	return m
}

// ModuleName derives the dotted module name from a path relative to the
// source root: the extension is stripped and path separators become dots
// ("gleam/string_tree.gleam" -> "gleam.string_tree").
func ModuleName(relPath, ext string) string {
	name := strings.TrimSuffix(filepath.ToSlash(relPath), ext)
	return strings.ReplaceAll(name, "/", ".")
}

// moduleDescription captures the first //// paragraph: the text of the
// first //// line plus any immediately following comment lines, up to a
// blank line or a line that does not start with a slash. Continuation
// lines keep their comment markers; consumers strip them if they care.
func moduleDescription(lines []string) string {
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, moduleDocMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	first := strings.TrimLeft(strings.TrimPrefix(lines[start], moduleDocMarker), " \t")
	block := []string{first}
	for j := start + 1; j < len(lines); j++ {
		if lines[j] == "" || !strings.HasPrefix(lines[j], "/") {
			break
		}
		block = append(block, lines[j])
	}

	return strings.TrimSpace(strings.Join(block, "\n"))
}
