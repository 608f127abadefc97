package reservation

import (
	"errors"
	"strings"
	"time"

	"room-booking/internal/domain/room"
)

var (
	ErrMissingFields    = errors.New("room, date, start time and end time are required")
	ErrInvalidTimeSlot  = errors.New("start time must be before end time")
	ErrDurationTooLong  = errors.New("reservation exceeds the maximum duration")
	ErrCapacityExceeded = errors.New("participants exceed room capacity")
	ErrRoomMismatch     = errors.New("booking form does not refer to the given room")
)

// BookingForm is the raw booking input before validation.
type BookingForm struct {
	RoomID       int
	Date         string
	StartTime    string
	EndTime      string
	Participants int
	Description  string
}

// Complete reports whether all four required fields are present.
func (f BookingForm) Complete() bool {
	return f.RoomID != 0 &&
		strings.TrimSpace(f.Date) != "" &&
		strings.TrimSpace(f.StartTime) != "" &&
		strings.TrimSpace(f.EndTime) != ""
}

// Policy holds the optional booking rules. The zero value accepts any slot.
type Policy struct {
	RequireOrderedTimes bool
	MaxDuration         time.Duration // 0 means unlimited
}

type Factory struct {
	Policy Policy
}

func NewFactory(policy Policy) *Factory {
	return &Factory{
		Policy: policy,
	}
}

// CreateDraft validates the form against the selected room and returns a
// confirmed draft with date and times normalised.
func (f *Factory) CreateDraft(roomEntity *room.Room, form BookingForm) (Draft, error) {
	if !form.Complete() {
		return Draft{}, ErrMissingFields
	}
	if roomEntity.ID() != form.RoomID {
		return Draft{}, ErrRoomMismatch
	}

	date, err := ParseDate(form.Date)
	if err != nil {
		return Draft{}, err
	}
	start, err := ParseTimeOfDay(form.StartTime)
	if err != nil {
		return Draft{}, err
	}
	end, err := ParseTimeOfDay(form.EndTime)
	if err != nil {
		return Draft{}, err
	}

	slot := NewTimeSlot(start, end)
	if err := f.validateSlot(slot); err != nil {
		return Draft{}, err
	}

	if form.Participants > 0 && !roomEntity.CanHost(form.Participants) {
		return Draft{}, ErrCapacityExceeded
	}

	return NewDraft(
		roomEntity.Name(),
		date,
		slot,
		StatusConfirmed,
		form.Participants,
		NewDescription(form.Description),
	)
}

func (f *Factory) validateSlot(slot TimeSlot) error {
	if f.Policy.RequireOrderedTimes && !slot.Ordered() {
		return ErrInvalidTimeSlot
	}
	if f.Policy.MaxDuration > 0 && slot.Duration() > f.Policy.MaxDuration {
		return ErrDurationTooLong
	}
	return nil
}
