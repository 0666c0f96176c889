package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// CookLogEntry is one recorded cook() invocation, the server-side analogue
// of the original tkinter app's accumulated output transcript — persisted
// here instead of ephemeral.
type CookLogEntry struct {
	ID           int64
	MaterialSig  string
	ResultActor  string
	MealName     string
	SellPrice    string
	CriticalRate string
	CookedAt     time.Time
}

// CookLogStore records and retrieves cook_log rows.
type CookLogStore struct {
	db *DB
}

// NewCookLogStore creates a CookLogStore backed by the given database.
func NewCookLogStore(db *DB) *CookLogStore {
	return &CookLogStore{db: db}
}

// Record appends one cook() invocation to the history log.
func (s *CookLogStore) Record(ctx context.Context, materialSig string, result cooking.CookResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cook_log (material_sig, result_actor, meal_name, sell_price, critical_rate, cooked_at)
		VALUES (?, ?, ?, ?, ?, datetime('now'))
	`, materialSig, result.ActorName, result.MealName, result.SellPrice, result.CriticalRate)
	if err != nil {
		return fmt.Errorf("recording cook log entry: %w", err)
	}
	return nil
}

// Recent returns the most recent limit cook_log entries, newest first.
func (s *CookLogStore) Recent(ctx context.Context, limit int) ([]CookLogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, material_sig, result_actor, meal_name, sell_price, critical_rate, cooked_at
		FROM cook_log
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying cook log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []CookLogEntry
	for rows.Next() {
		var e CookLogEntry
		var cookedAt string
		if err := rows.Scan(&e.ID, &e.MaterialSig, &e.ResultActor, &e.MealName, &e.SellPrice, &e.CriticalRate, &cookedAt); err != nil {
			return nil, fmt.Errorf("scanning cook log entry: %w", err)
		}
		e.CookedAt, _ = time.Parse("2006-01-02 15:04:05", cookedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
