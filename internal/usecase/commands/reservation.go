package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrMissingFields           = errs.New("missing booking fields")
	ErrInvalidBooking          = errs.New("invalid booking")
	ErrReservationConflict     = errs.New("reservation conflict")
	ErrStoreOperationFailed    = errs.New("store operation failed")
	ErrReservationCancelFailed = errs.New("reservation cancel failed")
)

type ReservationCommands interface {
	Book(ctx context.Context, req reqdto.CreateReservationRequest, sessionID uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, sessionID uuid.UUID, id int) error
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	roomRepo           RoomRepository
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
	rejectOverlaps     bool
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	reservationFactory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	rejectOverlaps bool,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		roomRepo:           roomRepo,
		reservationFactory: reservationFactory,
		reservationQueries: reservationQueries,
		rejectOverlaps:     rejectOverlaps,
	}
}

func (r *reservationCommandsImpl) Book(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	sessionID uuid.UUID,
) (*queries.ReservationView, error) {
	form := req.ToForm()
	if !form.Complete() {
		return nil, ErrMissingFields
	}

	roomEntity, err := r.findRoom(ctx, form.RoomID)
	if err != nil {
		return nil, err
	}

	draft, err := r.reservationFactory.CreateDraft(roomEntity, form)
	if err != nil {
		if errs.Is(err, reservation.ErrMissingFields) {
			return nil, errs.Mark(err, ErrMissingFields)
		}
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	var created reservation.Reservation
	if r.rejectOverlaps {
		created, err = r.reservationRepo.Book(ctx, sessionID, draft)
	} else {
		created, err = r.reservationRepo.Add(ctx, sessionID, draft)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrReservationConflict)
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	slog.Info("reservation booked",
		"session_id", sessionID.String(),
		"reservation_id", created.ID(),
		"room", created.RoomName(),
		"date", created.Date().String(),
	)

	// Read-after-write so the caller gets the same shape as the list endpoint
	view, err := r.reservationQueries.GetByID(ctx, sessionID, created.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return view, nil
}

// Cancel succeeds for unknown ids; nothing is removed in that case.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, sessionID uuid.UUID, id int) error {
	removed, err := r.reservationRepo.Cancel(ctx, sessionID, id)
	if err != nil {
		return errs.Mark(err, ErrReservationCancelFailed)
	}
	if !removed {
		slog.Debug("cancel of unknown reservation ignored", "session_id", sessionID.String(), "reservation_id", id)
		return nil
	}
	slog.Info("reservation cancelled", "session_id", sessionID.String(), "reservation_id", id)
	return nil
}

func (r *reservationCommandsImpl) findRoom(ctx context.Context, id int) (*room.Room, error) {
	roomEntity, err := r.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return roomEntity, nil
}
