package readstore

import (
	"room-booking/internal/infra/session"

	"github.com/google/uuid"
)

type SessionSource interface {
	Get(id uuid.UUID) *session.Session
}
