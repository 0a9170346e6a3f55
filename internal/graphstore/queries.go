// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MostDiverseJournal returns the journal mentioned by the most distinct
// drugs. On a tie, an arbitrary journal among the leaders is returned.
func (s *Store) MostDiverseJournal(ctx context.Context) (string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT journal_name
		FROM journal_references
		GROUP BY journal_name
		ORDER BY COUNT(DISTINCT drug_id) DESC
		LIMIT 1`)

	var journal string
	if err := row.Scan(&journal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("store has no journal references")
		}
		return "", fmt.Errorf("querying most diverse journal: %w", err)
	}
	return journal, nil
}

// RelatedDrugs returns the names of drugs that share at least one journal
// with the given drug, sorted, the drug itself excluded.
func (s *Store) RelatedDrugs(ctx context.Context, drugID string) ([]string, error) {
	var known int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM drugs WHERE id = ?`, drugID).Scan(&known); err != nil {
		return nil, fmt.Errorf("checking drug id: %w", err)
	}
	if known == 0 {
		return nil, fmt.Errorf("unknown drug id %q", drugID)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT d.name
		FROM journal_references target
		JOIN journal_references other ON other.journal_name = target.journal_name
		JOIN drugs d ON d.id = other.drug_id
		WHERE target.drug_id = ? AND other.drug_id != ?
		ORDER BY d.name`, drugID, drugID)
	if err != nil {
		return nil, fmt.Errorf("querying related drugs: %w", err)
	}
	defer rows.Close()

	var related []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning related drug: %w", err)
		}
		related = append(related, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating related drugs: %w", err)
	}
	return related, nil
}
