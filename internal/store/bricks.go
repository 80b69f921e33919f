package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/brickyard-dev/brick/internal/domain"
)

// Put inserts or replaces the cache entry with the same key. An entry
// without an ID gets a fresh one; replacing keeps the stored ID.
func (s *Store) Put(b domain.CachedBrick) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.FetchedAt.IsZero() {
		b.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO bricks (id, cache_key, name, version, source, location, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
			name = excluded.name,
			version = excluded.version,
			source = excluded.source,
			location = excluded.location,
			fetched_at = excluded.fetched_at`,
		b.ID,
		b.Key,
		b.Name,
		b.Version,
		b.Source,
		b.Location,
		b.FetchedAt.Format(timeLayout),
	)
	return err
}

// Find looks up a cache entry by key.
func (s *Store) Find(key string) (domain.CachedBrick, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, cache_key, name, version, source, location, fetched_at
		 FROM bricks WHERE cache_key = ?`,
		key,
	)

	b, err := scanBrick(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CachedBrick{}, false, nil
	}
	if err != nil {
		return domain.CachedBrick{}, false, err
	}
	return b, true, nil
}

// List returns every cache entry ordered by name then version.
func (s *Store) List() ([]domain.CachedBrick, error) {
	rows, err := s.db.Query(
		`SELECT id, cache_key, name, version, source, location, fetched_at
		 FROM bricks ORDER BY name, version`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CachedBrick
	for rows.Next() {
		b, err := scanBrick(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Delete removes the cache entry with the given key. Missing keys are not
// an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM bricks WHERE cache_key = ?", key)
	return err
}

// Clear removes every cache entry.
func (s *Store) Clear() (int64, error) {
	result, err := s.db.Exec("DELETE FROM bricks")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBrick(row scanner) (domain.CachedBrick, error) {
	var (
		b  domain.CachedBrick
		ts string
	)

	if err := row.Scan(&b.ID, &b.Key, &b.Name, &b.Version, &b.Source, &b.Location, &ts); err != nil {
		return domain.CachedBrick{}, err
	}

	t, err := time.Parse(timeLayout, ts)
	if err != nil {
		return domain.CachedBrick{}, err
	}
	b.FetchedAt = t

	return b, nil
}
