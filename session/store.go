package session

import (
	"context"
	"sync"
)

// Storage keys, kept identical to the browser front-end's localStorage
// schema so a backend inspecting either sees the same shape.
const (
	keyToken    = "token"
	keyRoles    = "roles"
	keyUserName = "userName"
)

// Record is the persisted session: the raw bearer token plus the role set
// and username extracted from it at login time. The zero Record means
// logged out; an empty Token is the canonical logged-out signal.
type Record struct {
	Token    string   `json:"token"`
	Roles    []string `json:"roles"`
	Username string   `json:"userName"`
}

// Empty reports whether the record carries no token.
func (r Record) Empty() bool { return r.Token == "" }

// Store persists a session record. Save replaces all fields atomically and
// Clear removes them together; implementations must never leave a partial
// record behind.
//
// The auth client is the only writer. Readers (the interceptor, state
// restoration) call Load.
type Store interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
	Clear(ctx context.Context) error
}

// MemoryStore is the default in-process store. It is safe for concurrent
// use and naturally atomic.
type MemoryStore struct {
	mu  sync.RWMutex
	rec Record
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements [Store].
func (s *MemoryStore) Load(_ context.Context) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec, nil
}

// Save implements [Store].
func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	s.rec = rec
	s.mu.Unlock()
	return nil
}

// Clear implements [Store].
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.rec = Record{}
	s.mu.Unlock()
	return nil
}
