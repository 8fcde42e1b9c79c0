package store

import (
	"slices"
	"sync"

	"github.com/dtroode/userdirectory/internal/broadcast"
	"github.com/dtroode/userdirectory/internal/logger"
	"github.com/dtroode/userdirectory/internal/model"
)

// Store owns the user collection. All mutations go through Dispatch and are
// applied one at a time; readers always see a complete collection.
//
// Slices handed out in snapshots are shared and must not be modified.
type Store struct {
	mu          sync.RWMutex
	users       []model.User
	version     uint64
	subscribers *broadcast.Latest[model.Snapshot]
	logger      *logger.Logger
}

// New creates a Store holding the seed collection.
func New(seed []model.User, logger *logger.Logger) *Store {
	s := &Store{
		subscribers: broadcast.New[model.Snapshot](),
		logger:      logger,
	}
	s.users, _ = Reduce(nil, SetUsers{Users: seed})
	s.version = 1
	if len(s.users) < len(seed) {
		logger.Warn("store: duplicate ids collapsed in seed", "received", len(seed), "kept", len(s.users))
	}
	return s
}

// Dispatch applies the action. It reports whether the collection changed.
func (s *Store) Dispatch(action Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := Reduce(s.users, action)
	if !changed {
		s.logger.Debug("store: action left collection unchanged", "action", action.Name(), "version", s.version)
		return false
	}

	if set, ok := action.(SetUsers); ok && len(next) < len(set.Users) {
		s.logger.Warn("store: duplicate ids collapsed",
			"action", action.Name(),
			"received", len(set.Users),
			"kept", len(next))
	}

	s.users = next
	s.version++
	s.logger.Debug("store: action applied", "action", action.Name(), "version", s.version, "size", len(next))

	s.subscribers.Publish(model.Snapshot{Version: s.version, Users: next})
	return true
}

// ReplaceAll replaces the whole collection.
func (s *Store) ReplaceAll(users []model.User) {
	s.Dispatch(SetUsers{Users: users})
}

// Add appends a user. A user whose id is already present replaces the existing entry in place.
func (s *Store) Add(user model.User) {
	s.Dispatch(AddUser{User: user})
}

// Update replaces the user with the same id in place; no-op when absent.
func (s *Store) Update(user model.User) {
	s.Dispatch(UpdateUser{User: user})
}

// Delete removes every user with the id; no-op when absent.
func (s *Store) Delete(id int64) {
	s.Dispatch(DeleteUser{ID: id})
}

// Snapshot returns the current collection and its version.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.Snapshot{Version: s.version, Users: s.users}
}

// Users returns a copy of the current collection.
func (s *Store) Users() []model.User {
	return slices.Clone(s.Snapshot().Users)
}

// Find returns the first user with the id.
func (s *Store) Find(id int64) (model.User, bool) {
	return s.Snapshot().Find(id)
}

// Subscribe returns a channel that immediately receives the current snapshot
// and then every later one. A subscriber that falls behind only sees the most
// recent snapshot. The returned func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan model.Snapshot, func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.subscribers.Subscribe(model.Snapshot{Version: s.version, Users: s.users})
}

// Close disconnects all subscribers.
func (s *Store) Close() {
	s.subscribers.Close()
}
