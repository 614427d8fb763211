// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists extracted function documentation in a SQLite
// database with full-text search. The index is an optional companion to the
// JSON-LD output: the generate pipeline never touches it, and it can be
// rebuilt from the sources at any time.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/gleamdoc/internal/emit"
	"github.com/pdiddy/gleamdoc/pkg/types"
)

const defaultMaxResults = 20

// Store manages the function index database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the index database at cfg.DBPath and ensures the
// schema exists.
func Open(cfg types.IndexConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS modules (
			name TEXT PRIMARY KEY,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS functions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			module TEXT NOT NULL REFERENCES modules(name),
			purpose TEXT,
			return_type TEXT NOT NULL,
			why_helpful TEXT,
			parameters TEXT,
			examples TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_functions_module ON functions(module)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='functions_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE functions_fts USING fts5(
				name, purpose, why_helpful, content=functions, content_rowid=rowid
			)`,
			`CREATE TRIGGER functions_ai AFTER INSERT ON functions BEGIN
				INSERT INTO functions_fts(rowid, name, purpose, why_helpful)
				VALUES (new.rowid, new.name, new.purpose, new.why_helpful);
			END`,
			`CREATE TRIGGER functions_ad AFTER DELETE ON functions BEGIN
				INSERT INTO functions_fts(functions_fts, rowid, name, purpose, why_helpful)
				VALUES('delete', old.rowid, old.name, old.purpose, old.why_helpful);
			END`,
			`CREATE TRIGGER functions_au AFTER UPDATE ON functions BEGIN
				INSERT INTO functions_fts(functions_fts, rowid, name, purpose, why_helpful)
				VALUES('delete', old.rowid, old.name, old.purpose, old.why_helpful);
				INSERT INTO functions_fts(rowid, name, purpose, why_helpful)
				VALUES (new.rowid, new.name, new.purpose, new.why_helpful);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest replaces the indexed content of each given module with its current
// functions. Function ids mirror the JSON-LD node ids without the ex: prefix.
func (s *Store) Ingest(ctx context.Context, modules []types.Module) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	count := 0
	for _, m := range modules {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO modules(name, description) VALUES(?, ?)
			 ON CONFLICT(name) DO UPDATE SET description = excluded.description`,
			m.Name, m.Description,
		); err != nil {
			return 0, fmt.Errorf("upserting module %s: %w", m.Name, err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM functions WHERE module = ?`, m.Name,
		); err != nil {
			return 0, fmt.Errorf("clearing module %s: %w", m.Name, err)
		}

		moduleID := emit.ModuleID(m.Name)
		for _, fn := range m.Functions {
			params, err := json.Marshal(fn.Parameters)
			if err != nil {
				return 0, fmt.Errorf("encoding parameters: %w", err)
			}
			examples, err := json.Marshal(fn.Examples)
			if err != nil {
				return 0, fmt.Errorf("encoding examples: %w", err)
			}

			// Duplicate function names collide on id, matching the node
			// ids in the emitted documents. Last write wins here.
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO functions(id, name, module, purpose, return_type, why_helpful, parameters, examples)
				 VALUES(?, ?, ?, ?, ?, ?, ?, ?)
				 ON CONFLICT(id) DO UPDATE SET
					purpose = excluded.purpose,
					return_type = excluded.return_type,
					why_helpful = excluded.why_helpful,
					parameters = excluded.parameters,
					examples = excluded.examples`,
				fmt.Sprintf("%s_%s", moduleID, fn.Name),
				fn.Name, m.Name, fn.Purpose, fn.ReturnType, fn.WhyHelpful,
				string(params), string(examples),
			); err != nil {
				return 0, fmt.Errorf("inserting function %s.%s: %w", m.Name, fn.Name, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return count, nil
}

// SearchResult is one ranked full-text match.
type SearchResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Module     string `json:"module"`
	Purpose    string `json:"purpose"`
	ReturnType string `json:"return_type"`
}

// Search runs an FTS5 query over function names, purposes, and rationales,
// returning up to limit results ranked by relevance. A limit of zero or
// less uses the configured default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT f.id, f.name, f.module, f.purpose, f.return_type
		 FROM functions_fts
		 JOIN functions f ON f.rowid = functions_fts.rowid
		 WHERE functions_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.Module, &r.Purpose, &r.ReturnType); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
