// Package tokenstore keeps the session token that authenticates SDK calls.
//
// It mirrors the key/value storage the backend's web UI persists its token
// in: the SDK reads Key on every request and deletes it when the backend
// answers 401. Writing it is left to whichever login flow the caller runs.
package tokenstore

import "sync"

// Key is the storage key of the session token.
const Key = "authToken"

// Store is a synchronous key/value store. Implementations must be safe for
// concurrent use: every in-flight request reads from it.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Token returns the stored session token, if any. An empty value counts as absent.
func Token(s Store) (string, bool) {
	if s == nil {
		return "", false
	}
	tok, ok := s.Get(Key)
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns a Memory store seeded with the given token (if non-empty).
func NewMemory(token string) *Memory {
	m := &Memory{}
	if token != "" {
		_ = m.Set(Key, token)
	}
	return m
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
