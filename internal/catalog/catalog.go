// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the static type catalog. The catalog is a small
// hand-authored table shipped with the binary; deployments can swap it out
// with an external YAML file without touching the extraction pipeline.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gleamdoc/pkg/types"
)

//go:embed gleam-types.yaml
var embedded []byte

// file is the YAML document shape of a catalog file.
type file struct {
	Types []types.TypeDefinition `yaml:"types"`
}

// Load returns the type definitions from the YAML file at path, or from the
// embedded default catalog when path is empty.
func Load(path string) ([]types.TypeDefinition, error) {
	data := embedded
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(f.Types) == 0 {
		return nil, fmt.Errorf("catalog defines no types")
	}

	// An explicit "parameters: []" must serialize as an empty list, not
	// null, so replace nil slices behind non-nil pointers.
	for _, def := range f.Types {
		for i := range def.Constructors {
			if p := def.Constructors[i].Parameters; p != nil && *p == nil {
				*p = []string{}
			}
		}
	}

	return f.Types, nil
}
