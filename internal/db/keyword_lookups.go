package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"keywordlens/internal/models"
)

// HashKeyword returns the digest stored in place of a keyword.
func HashKeyword(keyword string) string {
	sum := sha256.Sum256([]byte(keyword))
	return hex.EncodeToString(sum[:])
}

// IncrementKeywordLookup upserts the counter for a keyword's digest and outcome.
// The keyword itself is never written.
func (d *DB) IncrementKeywordLookup(ctx context.Context, keyword, outcome string) error {
	if keyword == "" || !models.IsLookupOutcome(outcome) {
		return ErrInvalidLookup
	}

	_, err := d.Pool.Exec(ctx, `
		INSERT INTO keyword_lookups (keyword_hash, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (keyword_hash, outcome) DO UPDATE
		SET count = keyword_lookups.count + 1, last_seen_at = NOW()
	`, HashKeyword(keyword), outcome)
	if err != nil {
		return fmt.Errorf("failed to increment keyword lookup: %w", err)
	}
	return nil
}

// GetLookupTotals returns per-outcome totals for metrics export.
func (d *DB) GetLookupTotals(ctx context.Context) ([]models.LookupTotal, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT outcome, COALESCE(SUM(count), 0)::BIGINT, COUNT(*)
		FROM keyword_lookups
		GROUP BY outcome
		ORDER BY outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.LookupTotal
	for rows.Next() {
		var t models.LookupTotal
		if err := rows.Scan(&t.Outcome, &t.Total, &t.Distinct); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// PruneKeywordLookups deletes rows not seen within maxAge and returns how many were removed.
func (d *DB) PruneKeywordLookups(ctx context.Context, maxAge time.Duration) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `
		DELETE FROM keyword_lookups
		WHERE last_seen_at < NOW() - make_interval(secs => $1)
	`, maxAge.Seconds())
	if err != nil {
		return 0, fmt.Errorf("failed to prune keyword lookups: %w", err)
	}
	return tag.RowsAffected(), nil
}
