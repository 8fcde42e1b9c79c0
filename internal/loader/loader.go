// Package loader simulates fetching a user collection that is already in
// memory, so consumers go through a loading phase before the data shows up.
package loader

import (
	"sync"
	"time"

	"github.com/dtroode/userdirectory/internal/broadcast"
	"github.com/dtroode/userdirectory/internal/logger"
	"github.com/dtroode/userdirectory/internal/model"
)

// DefaultDelay is how long a simulated load takes.
const DefaultDelay = time.Second

// State is what the loader exposes to consumers.
type State struct {
	// Loading is true from the moment a new input arrives until its load completes.
	Loading bool
	// Users is the last resolved collection.
	Users []model.User
	// Version is the snapshot version Users was resolved from; zero before the first completion.
	Version uint64
}

type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// Loader runs one simulated load per distinct snapshot version. A newer
// snapshot supersedes a pending load: its timer is stopped and, should the
// old callback already be running, the generation check keeps it from
// committing.
type Loader struct {
	mu          sync.Mutex
	delay       time.Duration
	after       afterFunc
	state       State
	seen        bool
	input       uint64
	generation  uint64
	pending     stopper
	closed      bool
	subscribers *broadcast.Latest[State]
	logger      *logger.Logger
}

// New creates a Loader that resolves each input after delay.
func New(delay time.Duration, logger *logger.Logger) *Loader {
	return &Loader{
		delay:       delay,
		after:       realAfterFunc,
		state:       State{Loading: true, Users: []model.User{}},
		subscribers: broadcast.New[State](),
		logger:      logger,
	}
}

// Load starts a load cycle for snap unless snap has the same version as the
// previous input. It reports whether a cycle was started.
func (l *Loader) Load(snap model.Snapshot) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false
	}
	if l.seen && snap.Version == l.input {
		return false
	}

	if l.pending != nil {
		l.pending.Stop()
		l.logger.Debug("loader: pending load superseded", "version", l.input, "by", snap.Version)
	}

	l.seen = true
	l.input = snap.Version
	l.generation++
	gen := l.generation

	l.setState(State{Loading: true, Users: l.state.Users, Version: l.state.Version})
	l.pending = l.after(l.delay, func() { l.complete(gen, snap) })

	l.logger.Debug("loader: load started", "version", snap.Version, "delay", l.delay)
	return true
}

func (l *Loader) complete(gen uint64, snap model.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || gen != l.generation {
		l.logger.Debug("loader: stale completion dropped", "version", snap.Version)
		return
	}

	l.pending = nil
	l.setState(State{Loading: false, Users: snap.Users, Version: snap.Version})
	l.logger.Debug("loader: load completed", "version", snap.Version, "size", len(snap.Users))
}

// setState must be called with mu held.
func (l *Loader) setState(s State) {
	l.state = s
	l.subscribers.Publish(s)
}

// State returns the current state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Subscribe returns a channel that receives the current state and every
// later transition; a slow reader only sees the latest state.
func (l *Loader) Subscribe() (<-chan State, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subscribers.Subscribe(l.state)
}

// Close cancels any pending load and disconnects subscribers.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	l.generation++
	if l.pending != nil {
		l.pending.Stop()
		l.pending = nil
	}
	l.subscribers.Close()
}
