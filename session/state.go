package session

import (
	"context"
	"time"

	"github.com/catalogkit/catalogkit/internal/pubsub"
	"github.com/catalogkit/catalogkit/token"
)

// Snapshot is one consistent view of the session: the three cells the UI,
// guard, and interceptor read. All three change together or not at all.
type Snapshot struct {
	LoggedIn bool
	Roles    []string
	Username string
}

// HasAnyRole reports whether the snapshot's role set intersects candidates.
func (s Snapshot) HasAnyRole(candidates ...string) bool {
	for _, have := range s.Roles {
		for _, want := range candidates {
			if have == want {
				return true
			}
		}
	}
	return false
}

// State is the observable session state. It mirrors the Store and is the
// single source of truth for consumers; only the auth client publishes to
// it. Publication is synchronous: by the time Publish returns, every
// subscriber has seen the new snapshot.
type State struct {
	cell *pubsub.Cell[Snapshot]
}

// NewState returns a logged-out state.
func NewState() *State {
	return &State{cell: pubsub.NewCell(Snapshot{})}
}

// Restore derives the initial state from the persisted store. A storage
// failure degrades to logged-out and is returned for the caller to log; the
// returned State is always usable.
//
// A stored token that no longer decodes, or that is expired, restores as
// logged out. The record is left in place; the next login or 401 overwrites
// it.
func Restore(ctx context.Context, store Store) (*State, error) {
	rec, err := store.Load(ctx)
	if err != nil {
		return NewState(), err
	}

	state := NewState()
	if rec.Empty() {
		return state, nil
	}

	claims, err := token.Decode(rec.Token)
	if err != nil || claims.Expired(time.Now()) {
		return state, nil
	}

	state.cell.Set(Snapshot{
		LoggedIn: true,
		Roles:    append([]string(nil), rec.Roles...),
		Username: rec.Username,
	})
	return state, nil
}

// Snapshot returns the current view.
func (s *State) Snapshot() Snapshot { return s.cell.Get() }

// LoggedIn reports whether a usable token is present.
func (s *State) LoggedIn() bool { return s.cell.Get().LoggedIn }

// Roles returns the current role set. Callers must not mutate it.
func (s *State) Roles() []string { return s.cell.Get().Roles }

// Username returns the current display name, empty when logged out.
func (s *State) Username() string { return s.cell.Get().Username }

// Subscribe registers fn for future snapshots and returns a cancel
// function. Callbacks run synchronously on the publisher's goroutine, after
// the snapshot is already readable.
func (s *State) Subscribe(fn func(Snapshot)) (cancel func()) {
	return s.cell.Subscribe(fn)
}

// Publish replaces the snapshot and notifies subscribers. It is the single
// mutation entry point and belongs to the auth client; consumers read only.
func (s *State) Publish(snap Snapshot) {
	s.cell.Set(snap)
}
