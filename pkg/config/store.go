package config

import (
	"sync"

	"github.com/dmitrymomot/inputkit/pkg/numfmt"
)

// Store holds the active Settings and lets callers replace them at runtime.
// Readers always get a consistent copy. Store is a numfmt.ConfigSource.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore validates s and wraps it in a Store.
func NewStore(s Settings) (*Store, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Store{settings: s.Clone()}, nil
}

func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.settings.Clone()
}

// Set replaces the settings if they are valid.
func (st *Store) Set(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	st.mu.Lock()
	st.settings = s.Clone()
	st.mu.Unlock()
	return nil
}

// Update applies fn to a copy of the current settings and stores the result
// if it is valid. The store is locked for the duration of fn.
func (st *Store) Update(fn func(*Settings)) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	next := st.settings.Clone()
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	st.settings = next
	return nil
}

func (st *Store) NumberFormat() numfmt.Config {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.settings.NumberFormat()
}
