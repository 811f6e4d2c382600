package file

import (
	"sync"

	"hypermedia-record-api/internal/record/repository"
	"hypermedia-record-api/pkg/log"
)

type implStore struct {
	dir string
	l   log.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a file-backed Store rooted at dir: one directory per
// collection, one JSON file per record with the id as file name.
func New(dir string, l log.Logger) repository.Store {
	if dir == "" {
		panic("record/repository/file: dir is required")
	}
	return &implStore{
		dir:   dir,
		l:     l,
		locks: make(map[string]*sync.Mutex),
	}
}

// lock returns the per-collection mutex guarding the mutation path.
// Reads stay lock-free: last-writer-wins is the documented model.
func (s *implStore) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[collection]
	if !ok {
		m = &sync.Mutex{}
		s.locks[collection] = m
	}
	return m
}
