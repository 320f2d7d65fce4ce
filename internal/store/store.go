// Package store persists resolved canonical records for the downstream
// pipeline. It stores extractor output, never upstream API responses.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/meurig/clic/internal/extractor"
)

// ErrNotFound is returned when a record id is not in the store.
var ErrNotFound = errors.New("record not found")

// Saved is one stored record together with its bookkeeping columns.
type Saved struct {
	Record     *extractor.Record
	SourceURL  string
	ResolvedAt time.Time
}

// Store provides access to saved records.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the records database at path and applies
// the schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(initialSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a record keyed by its programme id. The full record is kept
// as JSON; the indexed columns exist for listing and lookup.
func (s *Store) Save(ctx context.Context, record *extractor.Record, sourceURL string) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	var episodeNumber any
	if record.EpisodeNumber != nil {
		episodeNumber = *record.EpisodeNumber
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, source_url, series, series_id, season_number, episode_number, episode, data, resolved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   source_url = excluded.source_url,
		   series = excluded.series,
		   series_id = excluded.series_id,
		   season_number = excluded.season_number,
		   episode_number = excluded.episode_number,
		   episode = excluded.episode,
		   data = excluded.data,
		   resolved_at = excluded.resolved_at`,
		record.ID, sourceURL, record.Series, record.SeriesID, record.SeasonNumber,
		episodeNumber, record.Episode, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save record %s: %w", record.ID, err)
	}
	return nil
}

// Get fetches one saved record by programme id.
func (s *Store) Get(ctx context.Context, id string) (*Saved, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT source_url, data, resolved_at FROM records WHERE id = ?", id)

	var saved Saved
	var data string
	if err := row.Scan(&saved.SourceURL, &data, &saved.ResolvedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("record %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(data), &saved.Record); err != nil {
		return nil, fmt.Errorf("unmarshal record %s: %w", id, err)
	}
	return &saved, nil
}

// List returns all saved records, newest first.
func (s *Store) List(ctx context.Context) ([]Saved, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT source_url, data, resolved_at FROM records ORDER BY resolved_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var all []Saved
	for rows.Next() {
		var saved Saved
		var data string
		if err := rows.Scan(&saved.SourceURL, &data, &saved.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &saved.Record); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		all = append(all, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return all, nil
}

// Delete removes a saved record.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	return nil
}
