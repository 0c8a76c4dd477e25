package client

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// SessionStore persists serialized sessions under string keys. It is the
// SDK's stand-in for the browser's localStorage.
type SessionStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MemorySessionStore keeps sessions in process memory.
type MemorySessionStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: make(map[string][]byte)}
}

func (s *MemorySessionStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySessionStore) Set(key string, value []byte) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// FileSessionStore persists sessions as one JSON file per key under dir,
// so a CLI session survives process restarts.
type FileSessionStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileSessionStore creates a store rooted at dir, creating it if needed.
func NewFileSessionStore(dir string) (*FileSessionStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileSessionStore{dir: dir}, nil
}

func (s *FileSessionStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileSessionStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *FileSessionStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path(key), value, 0o600)
}

func (s *FileSessionStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
