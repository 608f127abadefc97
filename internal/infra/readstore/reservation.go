package readstore

import (
	"context"
	"log/slog"
	"strconv"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/datefmt"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	sessions SessionSource
}

func NewReservationReadStore(sessions SessionSource) *ReservationReadStore {
	return &ReservationReadStore{
		sessions: sessions,
	}
}

func (r *ReservationReadStore) FindAll(_ context.Context, sessionID uuid.UUID) ([]*queries.ReservationView, error) {
	rows := r.sessions.Get(sessionID).Reservations.List()

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func (r *ReservationReadStore) FindByID(_ context.Context, sessionID uuid.UUID, id int) (*queries.ReservationView, error) {
	row, ok := r.sessions.Get(sessionID).Reservations.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation "+strconv.Itoa(id)+" not found", nil)
	}
	return toReservationView(row), nil
}

func toReservationView(res reservation.Reservation) *queries.ReservationView {
	date := res.Date().String()
	formatted, err := datefmt.FormatDate(date)
	if err != nil {
		// stored dates are normalised, so this only fires on a corrupted entry
		slog.Warn("failed to format reservation date", "reservation_id", res.ID(), "date", date)
		formatted = date
	}

	return &queries.ReservationView{
		ID:            res.ID(),
		RoomName:      res.RoomName(),
		Date:          date,
		FormattedDate: formatted,
		StartTime:     res.StartTime().String(),
		EndTime:       res.EndTime().String(),
		Status:        res.Status().String(),
		Participants:  res.Participants(),
		Description:   res.Description().String(),
	}
}
