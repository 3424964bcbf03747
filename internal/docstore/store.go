// Package docstore implements a generic document store persisted as one
// JSON file per collection. Every repository in the service is a typed
// façade over one Store instance.
//
// A collection file holds a single JSON object mapping entity ids to
// entities. The whole mapping lives in memory; every mutation rewrites
// the file in full. A mutex serializes each mutate-then-persist
// sequence, so concurrent requests never capture a torn state.
package docstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arjunm-dev/cipherpost/internal/apperror"
	"github.com/arjunm-dev/cipherpost/internal/logger"
)

// Store is a durable collection of entities of one domain type, bound to
// <dir>/<collection>.json. Construct with New, then call Load before any
// other operation.
type Store[T any] struct {
	mu   sync.Mutex
	path string
	docs map[string]Entity[T]

	// newID is swapped out in tests to simulate id collisions.
	newID func() string
}

// New binds a store to its collection file. No I/O happens until Load.
func New[T any](dir, collection string) *Store[T] {
	return &Store[T]{
		path:  filepath.Join(dir, collection+".json"),
		docs:  map[string]Entity[T]{},
		newID: uuid.NewString,
	}
}

// Load reads the collection file into memory, replacing any previous
// state. A missing file is not an error: the data directory is created
// and an empty mapping is written as the initial persisted state. Any
// other failure is internal and leaves the store unusable.
func (s *Store[T]) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Info("collection file missing, starting with an empty store",
			zap.String("path", s.path))

		s.docs = map[string]Entity[T]{}
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return apperror.Wrap(apperror.CodeInternal, "failed to initialize the document store", err)
		}
		return s.save()
	}
	if err != nil {
		return apperror.Wrap(apperror.CodeInternal, "failed to load the document store", err)
	}

	docs := map[string]Entity[T]{}
	if err := json.Unmarshal(data, &docs); err != nil {
		return apperror.Wrap(apperror.CodeInternal, "failed to load the document store", err)
	}

	s.docs = docs
	return nil
}

// save rewrites the collection file from the in-memory mapping. Callers
// must hold s.mu.
func (s *Store[T]) save() error {
	data, err := json.MarshalIndent(s.docs, "", "  ")
	if err != nil {
		return apperror.Wrap(apperror.CodeInternal, "failed to save the document store", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperror.Wrap(apperror.CodeInternal, "failed to save the document store", err)
	}
	return nil
}

// Create stores doc under a fresh id, stamps createdAt and persists.
// The returned entity is durable on disk by the time Create returns nil.
func (s *Store[T]) Create(doc T) (Entity[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	if _, exists := s.docs[id]; exists {
		return Entity[T]{}, apperror.Conflict(fmt.Sprintf("document with id %s already exists", id))
	}

	ent := Entity[T]{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Doc:       doc,
	}
	s.docs[id] = ent

	if err := s.save(); err != nil {
		return Entity[T]{}, err
	}
	return ent, nil
}

// Read returns the entity for id. Absence is a normal outcome, reported
// through the bool, never as an error.
func (s *Store[T]) Read(id string) (Entity[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.docs[id]
	return ent, ok
}

// ReadAll returns every entity matching all criteria pairs by strict
// equality, or the whole collection when criteria is empty. Both domain
// fields and id/createdAt/updatedAt participate. Order is unspecified.
func (s *Store[T]) ReadAll(criteria map[string]any) ([]Entity[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll(criteria)
}

func (s *Store[T]) readAll(criteria map[string]any) ([]Entity[T], error) {
	results := make([]Entity[T], 0, len(s.docs))

	if len(criteria) == 0 {
		for _, ent := range s.docs {
			results = append(results, ent)
		}
		return results, nil
	}

	want := map[string]json.RawMessage{}
	for field, value := range criteria {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, apperror.Wrap(apperror.CodeInternal, "failed to match criteria", err)
		}
		want[field] = raw
	}

	for _, ent := range s.docs {
		flat, err := ent.fields()
		if err != nil {
			return nil, apperror.Wrap(apperror.CodeInternal, "failed to match criteria", err)
		}

		matched := true
		for field, raw := range want {
			if !bytes.Equal(flat[field], raw) {
				matched = false
				break
			}
		}
		if matched {
			results = append(results, ent)
		}
	}
	return results, nil
}

// ReadByField returns every entity whose field equals value. A linear
// scan; no index is maintained.
func (s *Store[T]) ReadByField(field string, value any) ([]Entity[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll(map[string]any{field: value})
}

// Update applies merge to the stored payload, refreshes updatedAt and
// persists. The id and createdAt cannot be touched by the merge.
func (s *Store[T]) Update(id string, merge func(T) T) (Entity[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.docs[id]
	if !ok {
		return Entity[T]{}, apperror.NotFound("document with this id does not exist")
	}

	now := time.Now().UTC()
	ent.Doc = merge(ent.Doc)
	ent.UpdatedAt = &now
	s.docs[id] = ent

	if err := s.save(); err != nil {
		return Entity[T]{}, err
	}
	return ent, nil
}

// Delete removes the entity for id and persists.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return apperror.NotFound("document with this id does not exist")
	}

	delete(s.docs, id)
	return s.save()
}
