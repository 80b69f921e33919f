package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/brickyard-dev/brick/internal/domain"
)

// SaveCredentials stores credentials, replacing any previous login for the
// same registry.
func (s *Store) SaveCredentials(c domain.Credentials) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO credentials (registry, token, email, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(registry) DO UPDATE SET
			token = excluded.token,
			email = excluded.email,
			created_at = excluded.created_at`,
		c.Registry,
		c.Token,
		c.Email,
		c.CreatedAt.Format(timeLayout),
	)
	return err
}

// Credentials returns the stored login for registry.
func (s *Store) Credentials(registry string) (domain.Credentials, bool, error) {
	var (
		c  domain.Credentials
		ts string
	)

	err := s.db.QueryRow(
		"SELECT registry, token, email, created_at FROM credentials WHERE registry = ?",
		registry,
	).Scan(&c.Registry, &c.Token, &c.Email, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Credentials{}, false, nil
	}
	if err != nil {
		return domain.Credentials{}, false, err
	}

	if c.CreatedAt, err = time.Parse(timeLayout, ts); err != nil {
		return domain.Credentials{}, false, err
	}
	return c, true, nil
}

// DeleteCredentials removes the login for registry, reporting whether one
// existed.
func (s *Store) DeleteCredentials(registry string) (bool, error) {
	result, err := s.db.Exec("DELETE FROM credentials WHERE registry = ?", registry)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
