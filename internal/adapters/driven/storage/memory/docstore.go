package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]string
	locked    map[string]bool
	failures  map[string]error
	writes    []string
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]string),
		locked:    make(map[string]bool),
		failures:  make(map[string]error),
	}
}

// Put stores content at path without recording a write.
func (s *DocumentStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[path] = content
}

// FailWrite makes every later write to path return err.
func (s *DocumentStore) FailWrite(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = err
}

// Writes returns the paths written, in order.
func (s *DocumentStore) Writes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.writes...)
}

// Read returns the content stored at path.
func (s *DocumentStore) Read(_ context.Context, path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.documents[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
	}
	return content, nil
}

// Write replaces the content at path.
func (s *DocumentStore) Write(_ context.Context, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures[path]; err != nil {
		return err
	}
	s.documents[path] = content
	s.writes = append(s.writes, path)
	return nil
}

// Exists reports whether content is stored at path.
func (s *DocumentStore) Exists(_ context.Context, path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.documents[path]
	return ok, nil
}

// Lock marks path as locked until the returned func is called.
func (s *DocumentStore) Lock(_ context.Context, path string) (driven.UnlockFunc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked[path] {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocked, path)
	}
	s.locked[path] = true

	var once sync.Once
	return func() error {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.locked, path)
		})
		return nil
	}, nil
}

// Locked reports whether path is currently locked.
func (s *DocumentStore) Locked(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locked[path]
}
