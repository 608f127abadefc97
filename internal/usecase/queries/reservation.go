package queries

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrReservationQueryFailed = errs.New("reservation query failed")
)

type ReservationReadStore interface {
	FindAll(ctx context.Context, sessionID uuid.UUID) ([]*ReservationView, error)
	FindByID(ctx context.Context, sessionID uuid.UUID, id int) (*ReservationView, error)
}

type ReservationQueries interface {
	List(ctx context.Context, sessionID uuid.UUID) ([]*ReservationView, error)
	GetByID(ctx context.Context, sessionID uuid.UUID, id int) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

// List returns the session's reservations in insertion order, unfiltered.
func (q *reservationQueriesImpl) List(ctx context.Context, sessionID uuid.UUID) ([]*ReservationView, error) {
	rows, err := q.repo.FindAll(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationQueryFailed)
	}
	return rows, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, sessionID uuid.UUID, id int) (*ReservationView, error) {
	rv, err := q.repo.FindByID(ctx, sessionID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrReservationQueryFailed)
	}
	return rv, nil
}
