package commands

import (
	"context"

	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidProfile    = errs.New("invalid profile")
	ErrProfileSaveFailed = errs.New("profile save failed")
)

type ProfileCommands interface {
	Update(ctx context.Context, sessionID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.ProfileView, error)
}

type profileCommandsImpl struct {
	profileRepo    ProfileRepository
	profileQueries queries.ProfileQueries
}

func NewProfileCommands(profileRepo ProfileRepository, profileQueries queries.ProfileQueries) ProfileCommands {
	return &profileCommandsImpl{
		profileRepo:    profileRepo,
		profileQueries: profileQueries,
	}
}

// Update applies the non-nil request fields on top of the current profile.
func (p *profileCommandsImpl) Update(
	ctx context.Context,
	sessionID uuid.UUID,
	req reqdto.UpdateProfileRequest,
) (*queries.ProfileView, error) {
	existing, err := p.profileQueries.Get(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrProfileSaveFailed)
	}
	if req.IsEmpty() {
		return existing, nil
	}

	updated, err := req.ToDomain(existing)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProfile)
	}

	if err := p.profileRepo.Save(ctx, sessionID, updated); err != nil {
		return nil, errs.Mark(err, ErrProfileSaveFailed)
	}

	return p.profileQueries.Get(ctx, sessionID)
}
