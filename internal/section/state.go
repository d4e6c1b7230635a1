package section

import "sync"

// Reader is the read-only view of the active section handed to renderers.
type Reader interface {
	Active() ID
}

// State holds the active section. Only a Detector in this package writes
// it; everything else reads through Reader.
type State struct {
	mu     sync.RWMutex
	active ID
}

// NewState starts at Home.
func NewState() *State {
	return &State{active: Home}
}

// Active returns the current section. A zero State is at Home.
func (s *State) Active() ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current()
}

func (s *State) current() ID {
	if s.active == "" {
		return Home
	}
	return s.active
}

func (s *State) set(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current() == id {
		return false
	}
	s.active = id
	return true
}
