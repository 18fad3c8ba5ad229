package config

import (
	"sync"

	"container-indicator/internal/world"
)

// Store holds the live configuration. Readers get consistent values while Update swaps
// in a new one; listeners run after every successful Update.
type Store struct {
	mu        sync.RWMutex
	cfg       Config
	path      string
	listeners []func(Config)
}

// NewStore wraps cfg. If path is not empty every Update is persisted there.
func NewStore(cfg *Config, path string) *Store {
	if cfg == nil {
		cfg = Default()
	}
	return &Store{cfg: *cfg, path: path}
}

// Get returns a copy of the current configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Path returns where Update persists to.
func (s *Store) Path() string {
	return s.path
}

// OnChange registers a listener for saved changes.
func (s *Store) OnChange(fn func(Config)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Update applies fn to a copy of the configuration, saves it and notifies listeners.
// When saving fails the in-memory value is still updated and the error is returned
// after listeners ran.
func (s *Store) Update(fn func(*Config)) error {
	s.mu.Lock()
	next := s.cfg
	fn(&next)
	next.normalize()
	s.cfg = next
	listeners := append([]func(Config){}, s.listeners...)
	path := s.path
	s.mu.Unlock()

	var err error
	if path != "" {
		err = Save(&next, path)
	}
	for _, l := range listeners {
		l(next)
	}
	return err
}

// Enabled reports whether the indicator is active for the block type: the global
// switch and the block's own toggle must both be on.
func (s *Store) Enabled(t world.BlockType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Enabled && s.cfg.Blocks.Enabled(t)
}

// IndicatorColor returns the tint for content overlays as 0xRRGGBB.
func (s *Store) IndicatorColor() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.IndicatorColor.RGB()
}

// FuelColor returns the tint for furnace fuel overlays as 0xRRGGBB.
func (s *Store) FuelColor() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.FuelColor.RGB()
}

// BatchSize returns the refresh batch size.
func (s *Store) BatchSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Refresh.BatchSize
}
