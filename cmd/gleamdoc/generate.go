// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gleamdoc/internal/catalog"
	"github.com/pdiddy/gleamdoc/internal/generate"
	"github.com/pdiddy/gleamdoc/pkg/types"
)

// Fixed defaults of the documentation layout. Flags and the config file can
// override them; a bare invocation uses exactly these.
const (
	defaultSourceDir  = "gleam-stdlib/src"
	defaultOutputDir  = "."
	defaultLanguage   = "gleam"
	defaultExtension  = ".gleam"
	defaultVocabURI   = "https://aalang.org/spec"
	defaultExampleURI = "https://aalang.org/example/"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Extract documentation and write the JSON-LD tree",
	Long: `Generate walks the source tree, extracts exported function documentation
from each module, and writes docs.jsonld, the static type catalog, and one
JSON-LD document per module with at least one extracted function.

Output is a pure function of the source files: re-running on unchanged
input produces byte-identical documents.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := generateConfig(cmd)

	defs, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	summary, err := generate.Run(cfg, defs, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		fmt.Fprintf(os.Stderr, "%d file(s) failed parsing\n", summary.Failed)
	}
	return nil
}

// generateConfig merges flag values with the config file, falling back to
// the fixed defaults. Flags win over config keys.
func generateConfig(cmd *cobra.Command) types.GenerateConfig {
	cfg := types.GenerateConfig{
		SourceDir:   stringSetting(cmd, "source-dir", "generate.source_dir", defaultSourceDir),
		OutputDir:   stringSetting(cmd, "output-dir", "generate.output_dir", defaultOutputDir),
		Language:    stringSetting(cmd, "language", "generate.language", defaultLanguage),
		Extension:   stringSetting(cmd, "extension", "generate.extension", defaultExtension),
		CatalogPath: stringSetting(cmd, "catalog", "generate.catalog_path", ""),
		VocabURI:    stringSetting(cmd, "vocab-uri", "generate.vocab_uri", defaultVocabURI),
		ExampleURI:  stringSetting(cmd, "example-uri", "generate.example_uri", defaultExampleURI),
	}
	return cfg
}

// stringSetting resolves one setting: an explicitly set flag wins, then a
// config-file/env key, then the built-in default.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("source-dir", defaultSourceDir, "source root that module names are derived from")
	cmd.Flags().String("output-dir", defaultOutputDir, "directory the JSON-LD tree is written into")
	cmd.Flags().String("language", defaultLanguage, "namespace directory under source-dir and example fence tag")
	cmd.Flags().String("extension", defaultExtension, "recognized source file extension")
	cmd.Flags().String("catalog", "", "YAML file overriding the embedded type catalog")
	cmd.Flags().String("vocab-uri", defaultVocabURI, "JSON-LD @vocab value")
	cmd.Flags().String("example-uri", defaultExampleURI, "JSON-LD ex: prefix expansion")
}

func init() {
	addGenerateFlags(generateCmd)
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
}
