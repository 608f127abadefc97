package repository

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	sessions SessionSource
}

func NewReservationRepository(sessions SessionSource) *ReservationRepository {
	return &ReservationRepository{
		sessions: sessions,
	}
}

func (r *ReservationRepository) Add(_ context.Context, sessionID uuid.UUID, draft reservation.Draft) (reservation.Reservation, error) {
	return r.sessions.Get(sessionID).Reservations.Add(draft), nil
}

func (r *ReservationRepository) Book(_ context.Context, sessionID uuid.UUID, draft reservation.Draft) (reservation.Reservation, error) {
	res, err := r.sessions.Get(sessionID).Reservations.Book(draft)
	if err != nil {
		if errs.Is(err, memstore.ErrSlotTaken) {
			return reservation.Reservation{}, infra.WrapRepoErr(infra.KindConflict, "slot already reserved", err)
		}
		return reservation.Reservation{}, infra.WrapRepoErr(infra.KindStoreFailure, "failed to book reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) Cancel(_ context.Context, sessionID uuid.UUID, id int) (bool, error) {
	return r.sessions.Get(sessionID).Reservations.Cancel(id), nil
}
