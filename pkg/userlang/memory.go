package userlang

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Store for tests and local development.
type Memory struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Language
	now   func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		items: make(map[uuid.UUID]Language),
		now:   time.Now,
	}
}

func (m *Memory) Language(_ context.Context, userID uuid.UUID) (Language, error) {
	if err := checkUserID(userID); err != nil {
		return Language{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	lang, ok := m.items[userID]
	if !ok {
		return Language{}, ErrNotFound
	}
	return lang, nil
}

func (m *Memory) SetLanguage(_ context.Context, userID uuid.UUID, code string) error {
	if err := checkUserID(userID); err != nil {
		return err
	}
	code, err := CanonicalCode(code)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[userID] = Language{Code: code, UpdatedAt: m.now().UTC()}
	return nil
}

var _ Store = (*Memory)(nil)
