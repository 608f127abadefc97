package repository

import (
	"room-booking/internal/infra/session"

	"github.com/google/uuid"
)

// SessionSource resolves the per-session state backing every repository.
type SessionSource interface {
	Get(id uuid.UUID) *session.Session
}
