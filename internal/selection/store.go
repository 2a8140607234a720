// Package selection persists the parts a shopper has picked for a build.
// The compatibility engine never sees this package; callers load a
// Selection here and hand it to the engine by value.
package selection

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("selection: key not found")

// Store is the key-value capability builds are saved through.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MapStore keeps values in process memory.
type MapStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMapStore() *MapStore {
	return &MapStore{data: make(map[string][]byte)}
}

func (s *MapStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MapStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MapStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
