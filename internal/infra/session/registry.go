package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"room-booking/internal/domain/profile"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Session owns everything a browser session would keep in memory.
type Session struct {
	ID           uuid.UUID
	Reservations *memstore.ReservationStore
	Profile      *memstore.ProfileStore

	lastSeen time.Time
}

// Registry maps session ids to their state. Sessions are created on first
// use and dropped once idle for longer than idleTimeout.
type Registry struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*Session
	clock       clock.Clock
	idleTimeout time.Duration
	logger      *slog.Logger
}

func NewRegistry(clk clock.Clock, idleTimeout time.Duration, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sessions:    make(map[uuid.UUID]*Session),
		clock:       clk,
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

// Get returns the session for id, creating it if needed, and marks it as
// recently used.
func (r *Registry) Get(id uuid.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	s, ok := r.sessions[id]
	if !ok {
		s = &Session{
			ID:           id,
			Reservations: memstore.NewReservationStore(),
			Profile:      memstore.NewProfileStore(profile.Default()),
		}
		r.sessions[id] = s
		r.logger.Debug("session created", "session_id", id.String())
	}
	s.lastSeen = now
	return s
}

// Lookup returns an existing session without creating or touching it.
func (r *Registry) Lookup(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Drop(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Sweep removes sessions idle for longer than the idle timeout and returns
// how many were removed. A non-positive timeout disables expiry.
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.clock.Now().Add(-r.idleTimeout)
	removed := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("expired idle sessions", "removed", n, "remaining", r.Len())
			}
		}
	}
}
