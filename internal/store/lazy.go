package store

import (
	"path/filepath"
	"sync"

	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/failure"
	"github.com/brickyard-dev/brick/internal/paths"
)

// Lazy opens the database on first use. Commands that never touch the
// cache index or credentials run even when the data directory is unusable.
type Lazy struct {
	path string

	once  sync.Once
	store *Store
	err   error
}

// NewLazy returns a store that opens path when first needed.
func NewLazy(path string) *Lazy {
	return &Lazy{path: path}
}

func (l *Lazy) open() (*Store, error) {
	l.once.Do(func() {
		dir := filepath.Dir(l.path)
		if err := paths.EnsureDir(dir); err != nil {
			l.err = failure.Domain("Could not create data directory %s: %v", dir, err)
			return
		}
		s, err := New(l.path)
		if err != nil {
			l.err = failure.Domain("Could not open the brick cache index at %s: %v", l.path, err)
			return
		}
		l.store = s
	})
	return l.store, l.err
}

// Opened reports whether the database has been opened successfully.
func (l *Lazy) Opened() bool {
	return l.store != nil
}

func (l *Lazy) Put(b domain.CachedBrick) error {
	s, err := l.open()
	if err != nil {
		return err
	}
	return s.Put(b)
}

func (l *Lazy) Find(key string) (domain.CachedBrick, bool, error) {
	s, err := l.open()
	if err != nil {
		return domain.CachedBrick{}, false, err
	}
	return s.Find(key)
}

func (l *Lazy) List() ([]domain.CachedBrick, error) {
	s, err := l.open()
	if err != nil {
		return nil, err
	}
	return s.List()
}

func (l *Lazy) Delete(key string) error {
	s, err := l.open()
	if err != nil {
		return err
	}
	return s.Delete(key)
}

func (l *Lazy) Clear() (int64, error) {
	s, err := l.open()
	if err != nil {
		return 0, err
	}
	return s.Clear()
}

func (l *Lazy) SaveCredentials(c domain.Credentials) error {
	s, err := l.open()
	if err != nil {
		return err
	}
	return s.SaveCredentials(c)
}

func (l *Lazy) Credentials(registry string) (domain.Credentials, bool, error) {
	s, err := l.open()
	if err != nil {
		return domain.Credentials{}, false, err
	}
	return s.Credentials(registry)
}

func (l *Lazy) DeleteCredentials(registry string) (bool, error) {
	s, err := l.open()
	if err != nil {
		return false, err
	}
	return s.DeleteCredentials(registry)
}

// Close closes the database if it was opened.
func (l *Lazy) Close() error {
	if l == nil || l.store == nil {
		return nil
	}
	return l.store.Close()
}

var _ domain.BrickStore = (*Lazy)(nil)
