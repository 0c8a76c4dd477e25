package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// StubMediaStorage is an in-memory media storage used when no object storage
// is configured, and in tests. Upload URLs point at nothing usable; direct
// uploads are held in memory.
type StubMediaStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubMediaStorage creates a new in-memory media storage
func NewStubMediaStorage() *StubMediaStorage {
	return &StubMediaStorage{objects: make(map[string][]byte)}
}

// EnsureBucket is a no-op for the stub
func (s *StubMediaStorage) EnsureBucket(_ context.Context) error {
	return nil
}

// GenerateUploadURL returns a placeholder upload URL
func (s *StubMediaStorage) GenerateUploadURL(_ context.Context, key, _ string) (string, error) {
	return "stub://upload/" + key, nil
}

// GenerateDownloadURL returns a placeholder download URL
func (s *StubMediaStorage) GenerateDownloadURL(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[key]; !ok {
		return "", fmt.Errorf("object %s not found", key)
	}
	return "stub://download/" + key, nil
}

// Upload stores the object in memory
func (s *StubMediaStorage) Upload(_ context.Context, key, _ string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()
	return nil
}

// DeleteObject removes the object from memory
func (s *StubMediaStorage) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether the key is stored
func (s *StubMediaStorage) ObjectExists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}

// PublicURL returns a placeholder public URL
func (s *StubMediaStorage) PublicURL(key string) string {
	return "/media/" + key
}
