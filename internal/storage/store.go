package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnavailable wraps any failure to reach the backing directory.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrCorrupt is returned by GetJSON when a stored value is not valid JSON.
	ErrCorrupt = errors.New("stored value is corrupt")
	// ErrInvalidKey is returned for empty keys or keys containing path separators.
	ErrInvalidKey = errors.New("invalid storage key")
)

// Store is a key/value store that keeps one file per key inside a directory,
// mirroring the browser's localStorage.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore returns a store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key), nil
}

// GetItem returns the raw value stored under key.
// The boolean is false when the key has never been written.
func (s *Store) GetItem(key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, key, err)
	}
	return string(data), true, nil
}

// SetItem writes value under key, creating the store directory if needed.
func (s *Store) SetItem(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.WriteFile(p, []byte(value), 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (s *Store) RemoveItem(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: removing %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

// Keys lists the stored keys in lexical order.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var keys []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		keys = append(keys, f.Name())
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes every key in the store.
func (s *Store) Clear() error {
	keys, err := s.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := s.RemoveItem(k); err != nil {
			return err
		}
	}
	return nil
}

// GetJSON decodes the value under key into v.
// It returns false when the key is absent and ErrCorrupt when it cannot be parsed.
func (s *Store) GetJSON(key string, v any) (bool, error) {
	raw, ok, err := s.GetItem(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func (s *Store) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.SetItem(key, string(data))
}
