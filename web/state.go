package web

import (
	"sync"
	"sync/atomic"

	"github.com/fwojciec/icondeck"
)

// State holds the gallery's current icon collection. The collection swaps
// wholesale after a refresh, so readers always see a complete set, never a
// half-loaded one.
type State struct {
	mu         sync.RWMutex
	icons      icondeck.Collection
	index      *icondeck.Index
	refreshing atomic.Bool
}

// NewState creates an empty gallery state.
func NewState() *State {
	return &State{}
}

// Icons returns the current collection.
func (s *State) Icons() icondeck.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.icons
}

// Index returns the manifest built from the current collection, or nil when
// no refresh has completed yet.
func (s *State) Index() *icondeck.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Swap replaces the collection and its manifest in one step.
func (s *State) Swap(icons icondeck.Collection, index *icondeck.Index) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.icons = icons
	s.index = index
}

// BeginRefresh marks a refresh as in flight. It reports false when another
// refresh is already running.
func (s *State) BeginRefresh() bool {
	return s.refreshing.CompareAndSwap(false, true)
}

// EndRefresh clears the in-flight marker.
func (s *State) EndRefresh() {
	s.refreshing.Store(false)
}

// Refreshing reports whether a refresh is currently in flight.
func (s *State) Refreshing() bool {
	return s.refreshing.Load()
}
