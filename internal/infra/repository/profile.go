package repository

import (
	"context"

	"room-booking/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	sessions SessionSource
}

func NewProfileRepository(sessions SessionSource) *ProfileRepository {
	return &ProfileRepository{
		sessions: sessions,
	}
}

func (r *ProfileRepository) Save(_ context.Context, sessionID uuid.UUID, p *profile.Profile) error {
	r.sessions.Get(sessionID).Profile.Replace(p)
	return nil
}
