package memstore

import (
	"sync"

	"room-booking/internal/domain/profile"
)

type ProfileStore struct {
	mu      sync.RWMutex
	current *profile.Profile
}

func NewProfileStore(initial *profile.Profile) *ProfileStore {
	if initial == nil {
		initial = profile.Default()
	}
	return &ProfileStore{current: initial}
}

func (s *ProfileStore) Get() *profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *ProfileStore) Replace(p *profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
}
