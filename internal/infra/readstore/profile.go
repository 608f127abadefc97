package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProfileReadStore struct {
	sessions SessionSource
}

func NewProfileReadStore(sessions SessionSource) *ProfileReadStore {
	return &ProfileReadStore{
		sessions: sessions,
	}
}

func (r *ProfileReadStore) FindBySession(_ context.Context, sessionID uuid.UUID) (*queries.ProfileView, error) {
	p := r.sessions.Get(sessionID).Profile.Get()

	var view queries.ProfileView
	if err := copier.Copy(&view, p); err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to map profile", err)
	}
	return &view, nil
}
