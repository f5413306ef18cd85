package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/caloria-app/backend/internal/models"
)

// MemoryStore holds the profile document in process memory. It backs tests
// and ephemeral runs; data is lost on restart.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return decodeProfile(s.data)
}

func (s *MemoryStore) Save(profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	return nil
}

// SetRaw replaces the stored payload with arbitrary bytes. Tests use it to
// simulate corrupted storage.
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	s.data = append([]byte(nil), data...)
	s.mu.Unlock()
}
