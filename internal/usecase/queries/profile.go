package queries

import (
	"context"

	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProfileQueryFailed = errs.New("profile query failed")

type ProfileReadStore interface {
	FindBySession(ctx context.Context, sessionID uuid.UUID) (*ProfileView, error)
}

type ProfileQueries interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*ProfileView, error)
}

type profileQueriesImpl struct {
	repo ProfileReadStore
}

func NewProfileQueries(repo ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{repo: repo}
}

func (q *profileQueriesImpl) Get(ctx context.Context, sessionID uuid.UUID) (*ProfileView, error) {
	pv, err := q.repo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrProfileQueryFailed)
	}
	return pv, nil
}
