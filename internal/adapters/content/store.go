// Package content provides the embedded, read-only stores backing posts
// and static assets.
package content

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/sphericalkat/website/internal/domain"
)

// Store is an immutable in-memory mapping from filename to file bytes,
// loaded once from an fs.FS at construction. Reads require no locking:
// nothing mutates the map after New returns.
type Store struct {
	entity string
	files  map[string][]byte
	names  []string
}

// New loads every regular file under fsys into memory. The entity name
// is used in not-found errors ("post", "asset").
func New(fsys fs.FS, entity string) (*Store, error) {
	files := map[string][]byte{}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		files[path] = data

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading %s bundle: %w", entity, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Store{
		entity: entity,
		files:  files,
		names:  names,
	}, nil
}

// List returns the filenames of every file in the store, sorted.
func (s *Store) List(_ context.Context) ([]string, error) {
	return append([]string(nil), s.names...), nil
}

// Get returns the raw bytes of the named file. The returned slice is
// shared and must be treated as read-only.
func (s *Store) Get(_ context.Context, name string) ([]byte, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, domain.NewNotFoundError(s.entity, name)
	}

	return data, nil
}

// Len returns the number of files in the store.
func (s *Store) Len() int {
	return len(s.files)
}
