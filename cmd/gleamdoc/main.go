// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gleamdoc CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the gleamdoc CLI. Running it with no
// subcommand generates the documentation tree with the default layout, so
// a bare "gleamdoc" invocation needs no flags, environment, or config file.
var rootCmd = &cobra.Command{
	Use:   "gleamdoc",
	Short: "Generate JSON-LD documentation from annotated Gleam sources",
	Long: `gleamdoc extracts documentation from the comment conventions of a Gleam
source tree (//// module docs, /// function docs, pub fn declarations) and
emits a linked-data representation: an index document, a static type
catalog, and one JSON-LD file per module describing its exported functions.

Extraction is heuristic and best-effort: declarations or parameters that do
not match the expected shape are quietly omitted, and a file that fails to
parse is logged and skipped without aborting the run.`,
	RunE: runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gleamdoc.yaml or ~/.config/gleamdoc/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gleamdoc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gleamdoc"))
		}
	}

	viper.SetEnvPrefix("GLEAMDOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
