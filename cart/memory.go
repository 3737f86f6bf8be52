package cart

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. It is the default when no Redis
// address is configured, and doubles as the test fake.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uint][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uint][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, userID uint) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Decode(s.carts[userID]), nil
}

func (s *MemoryStore) Set(_ context.Context, userID uint, c Cart) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = data
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
