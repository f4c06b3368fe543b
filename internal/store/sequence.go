package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter numbers messages and LLM request events from a single
// counter so rows from both tables can be put in one order.
//
// ent has no atomic counter, so this is plain SQL that runs unchanged on
// SQLite and Postgres.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(ctx context.Context, db *sql.DB) (*sequenceCounter, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val BIGINT NOT NULL DEFAULT 1
		)`,
		`INSERT INTO global_sequence (id, next_val) VALUES (1, 1) ON CONFLICT (id) DO NOTHING`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("prepare sequence table: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	return sc.Reserve(ctx, 1)
}

// Reserve claims n consecutive numbers and returns the first.
func (sc *sequenceCounter) Reserve(ctx context.Context, n int) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("reserve %d sequence numbers", n)
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var first int64
	q := fmt.Sprintf(`UPDATE global_sequence SET next_val = next_val + %d WHERE id = 1 RETURNING next_val - %d`, n, n)
	if err := sc.db.QueryRowContext(ctx, q).Scan(&first); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return first, nil
}
