// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/drug-graph/pkg/types"
)

// Store manages the citation graph SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the SQLite database at dbPath and bootstraps
// the schema if it does not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS drugs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS clinical_trial_references (
			drug_id TEXT NOT NULL REFERENCES drugs(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			clinical_trial_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS article_references (
			drug_id TEXT NOT NULL REFERENCES drugs(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			article_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS journal_references (
			drug_id TEXT NOT NULL REFERENCES drugs(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			journal_name TEXT NOT NULL,
			ref_count INTEGER NOT NULL,
			PRIMARY KEY (drug_id, journal_name, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trial_refs_drug ON clinical_trial_references(drug_id)`,
		`CREATE INDEX IF NOT EXISTS idx_article_refs_drug ON article_references(drug_id)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_refs_journal ON journal_references(journal_name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save replaces the stored graph with g in a single transaction. The job is
// a full recompute, so rows from a previous run never survive a new Save.
func (s *Store) Save(ctx context.Context, g types.Graph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"journal_references", "article_references", "clinical_trial_references", "drugs",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, drug := range g.Drugs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO drugs (id, name) VALUES (?, ?)`, drug.ID, drug.Name); err != nil {
			return fmt.Errorf("inserting drug %s: %w", drug.ID, err)
		}
		for _, ref := range drug.ClinicalTrialReferences {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO clinical_trial_references (drug_id, date, clinical_trial_name) VALUES (?, ?, ?)`,
				drug.ID, ref.Date, ref.ClinicalTrialName); err != nil {
				return fmt.Errorf("inserting trial reference for %s: %w", drug.ID, err)
			}
		}
		for _, ref := range drug.ArticleReferences {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO article_references (drug_id, date, article_name) VALUES (?, ?, ?)`,
				drug.ID, ref.Date, ref.ArticleName); err != nil {
				return fmt.Errorf("inserting article reference for %s: %w", drug.ID, err)
			}
		}
		for _, ref := range drug.JournalReferences {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO journal_references (drug_id, date, journal_name, ref_count) VALUES (?, ?, ?, ?)`,
				drug.ID, ref.Date, ref.JournalName, ref.RefCount); err != nil {
				return fmt.Errorf("inserting journal reference for %s: %w", drug.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing graph: %w", err)
	}
	return nil
}

// LoadGraph reads the stored graph back into memory, drugs ordered by id.
func (s *Store) LoadGraph(ctx context.Context) (types.Graph, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM drugs ORDER BY id`)
	if err != nil {
		return types.Graph{}, fmt.Errorf("querying drugs: %w", err)
	}
	defer rows.Close()

	var g types.Graph
	for rows.Next() {
		var d types.Drug
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return types.Graph{}, fmt.Errorf("scanning drug: %w", err)
		}
		g.Drugs = append(g.Drugs, d)
	}
	if err := rows.Err(); err != nil {
		return types.Graph{}, fmt.Errorf("iterating drugs: %w", err)
	}

	for i := range g.Drugs {
		d := &g.Drugs[i]
		if err := s.loadReferences(ctx, d); err != nil {
			return types.Graph{}, err
		}
	}
	return g, nil
}

func (s *Store) loadReferences(ctx context.Context, d *types.Drug) error {
	trialRows, err := s.db.QueryContext(ctx,
		`SELECT date, clinical_trial_name FROM clinical_trial_references WHERE drug_id = ?`, d.ID)
	if err != nil {
		return fmt.Errorf("querying trial references: %w", err)
	}
	defer trialRows.Close()
	for trialRows.Next() {
		var ref types.ClinicalTrialReference
		if err := trialRows.Scan(&ref.Date, &ref.ClinicalTrialName); err != nil {
			return fmt.Errorf("scanning trial reference: %w", err)
		}
		d.ClinicalTrialReferences = append(d.ClinicalTrialReferences, ref)
	}
	if err := trialRows.Err(); err != nil {
		return fmt.Errorf("iterating trial references: %w", err)
	}

	articleRows, err := s.db.QueryContext(ctx,
		`SELECT date, article_name FROM article_references WHERE drug_id = ?`, d.ID)
	if err != nil {
		return fmt.Errorf("querying article references: %w", err)
	}
	defer articleRows.Close()
	for articleRows.Next() {
		var ref types.ArticleReference
		if err := articleRows.Scan(&ref.Date, &ref.ArticleName); err != nil {
			return fmt.Errorf("scanning article reference: %w", err)
		}
		d.ArticleReferences = append(d.ArticleReferences, ref)
	}
	if err := articleRows.Err(); err != nil {
		return fmt.Errorf("iterating article references: %w", err)
	}

	journalRows, err := s.db.QueryContext(ctx,
		`SELECT date, journal_name, ref_count FROM journal_references WHERE drug_id = ?
		 ORDER BY journal_name, date`, d.ID)
	if err != nil {
		return fmt.Errorf("querying journal references: %w", err)
	}
	defer journalRows.Close()
	for journalRows.Next() {
		var ref types.JournalReference
		if err := journalRows.Scan(&ref.Date, &ref.JournalName, &ref.RefCount); err != nil {
			return fmt.Errorf("scanning journal reference: %w", err)
		}
		d.JournalReferences = append(d.JournalReferences, ref)
	}
	if err := journalRows.Err(); err != nil {
		return fmt.Errorf("iterating journal references: %w", err)
	}
	return nil
}
