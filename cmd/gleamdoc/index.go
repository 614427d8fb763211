// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gleamdoc/internal/generate"
	"github.com/pdiddy/gleamdoc/internal/index"
	"github.com/pdiddy/gleamdoc/pkg/types"
)

const defaultDBPath = "docs.db"

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build a searchable SQLite index of extracted functions",
	Long: `Index runs the same extraction pipeline as generate, but instead of
writing JSON-LD files it ingests the extracted modules into a SQLite
database with FTS5 full-text search over function names, purposes, and
rationales. The index is rebuildable at any time and is never read by
the generate pipeline.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := generateConfig(cmd)
	idxCfg := indexConfig(cmd)

	modules, summary, err := generate.Extract(cfg, os.Stderr)
	if err != nil {
		return err
	}

	store, err := index.Open(idxCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.Ingest(context.Background(), modules)
	if err != nil {
		return err
	}

	fmt.Printf("Indexed %d functions from %d modules\n", count, summary.Modules)
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the function index",
	Long: `Search queries the SQLite function index built by the index subcommand,
using FTS5 full-text search ranked by relevance.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	idxCfg := indexConfig(cmd)

	store, err := index.Open(idxCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	results, err := store.Search(context.Background(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []index.SearchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %-20s  %-40s  %s\n",
		"Rank", "Function", "Module", "Purpose", "Returns")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		purpose := r.Purpose
		if len(purpose) > 40 {
			purpose = purpose[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %-20s  %-40s  %s\n",
			i+1, r.Name, r.Module, purpose, r.ReturnType)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// indexConfig resolves the index settings from flags and the config file.
func indexConfig(cmd *cobra.Command) types.IndexConfig {
	dbPath := stringSetting(cmd, "db", "index.db_path", defaultDBPath)
	maxResults := viper.GetInt("index.max_results")
	return types.IndexConfig{DBPath: dbPath, MaxResults: maxResults}
}

func init() {
	indexCmd.Flags().String("db", defaultDBPath, "SQLite database path")
	addGenerateFlags(indexCmd)

	searchCmd.Flags().String("db", defaultDBPath, "SQLite database path")
	searchCmd.Flags().Int("limit", 0, "maximum number of results (default from config)")
	searchCmd.Flags().Bool("json", false, "emit results as JSON")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
}
