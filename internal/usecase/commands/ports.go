package commands

import (
	"context"

	"room-booking/internal/domain/profile"
	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"

	"github.com/google/uuid"
)

// Write-side ports. Reads that follow a write go through the queries package.

type RoomRepository interface {
	FindByID(ctx context.Context, id int) (*room.Room, error)
}

type ReservationRepository interface {
	// Add stores the draft unconditionally.
	Add(ctx context.Context, sessionID uuid.UUID, draft reservation.Draft) (reservation.Reservation, error)
	// Book stores the draft unless it overlaps an active reservation, in
	// which case it fails with a conflict error.
	Book(ctx context.Context, sessionID uuid.UUID, draft reservation.Draft) (reservation.Reservation, error)
	Cancel(ctx context.Context, sessionID uuid.UUID, id int) (bool, error)
}

type ProfileRepository interface {
	Save(ctx context.Context, sessionID uuid.UUID, p *profile.Profile) error
}
