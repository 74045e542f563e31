package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/legally-ai/legally/internal/domain"
)

// HistoryRepository handles the append-only per-user interaction log
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append stores an entry for a user. The caller-supplied fields are kept
// as-is in the JSON payload; username and timestamp live in their own
// columns so listing can stamp them back deterministically.
func (r *HistoryRepository) Append(username string, entry domain.HistoryEntry, ts time.Time) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO history (id, username, payload, timestamp, seq)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM history))
	`, uuid.New().String(), username, string(payload), ts)

	return err
}

// ListByUser returns all entries for a user in insertion order, each
// augmented with username and timestamp.
func (r *HistoryRepository) ListByUser(username string) ([]domain.HistoryEntry, error) {
	rows, err := r.db.Query(`
		SELECT payload, timestamp
		FROM history WHERE username = ?
		ORDER BY seq ASC
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var payload string
		var ts time.Time

		if err := rows.Scan(&payload, &ts); err != nil {
			return nil, err
		}

		entry := domain.HistoryEntry{}
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			return nil, err
		}
		entry["username"] = username
		entry["timestamp"] = ts.UTC().Format(time.RFC3339Nano)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
