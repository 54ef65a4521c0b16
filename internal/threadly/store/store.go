// Package store holds the client's global application state behind a reducer.
package store

import (
	"sync"

	"github.com/google/go-cmp/cmp"
)

// State is the authenticated session visible to every view.
type State struct {
	User  *User
	Token string
}

// LoggedIn reports whether a token is present.
func (s State) LoggedIn() bool {
	return s.Token != ""
}

// Action is a message applied to the store by Dispatch.
type Action interface {
	isAction()
}

// SetLogin replaces the session with a freshly authenticated user.
type SetLogin struct {
	User  *User
	Token string
}

// SetLogout clears the session.
type SetLogout struct{}

func (SetLogin) isAction()  {}
func (SetLogout) isAction() {}

// Reduce returns the state that results from applying action to state.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetLogin:
		return State{User: a.User, Token: a.Token}
	case SetLogout:
		return State{}
	default:
		return state
	}
}

// Dispatcher accepts actions. Views depend on this rather than on *Store.
type Dispatcher interface {
	Dispatch(Action)
}

// Store is a concurrency-safe reducer store.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// New creates an empty store.
func New() *Store {
	return &Store{listeners: make(map[int]func(State))}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and notifies subscribers if the state changed.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	if cmp.Equal(prev, next) {
		return
	}
	for _, fn := range listeners {
		fn(next)
	}
}

// Subscribe registers fn to run after every state change. The returned func removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
