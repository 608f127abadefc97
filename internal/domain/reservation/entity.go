package reservation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomName       = errors.New("room name cannot be empty")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrNegativeParticipant = errors.New("participants cannot be negative")
)

// Draft is a reservation that has not been given an id yet.
type Draft struct {
	roomName     string
	date         Date
	slot         TimeSlot
	status       Status
	participants int
	description  Description
}

func NewDraft(roomName string, date Date, slot TimeSlot, status Status, participants int, description Description) (Draft, error) {
	roomName = strings.TrimSpace(roomName)
	if roomName == "" {
		return Draft{}, ErrEmptyRoomName
	}
	if !status.IsValid() {
		return Draft{}, ErrInvalidStatus
	}
	if participants < 0 {
		return Draft{}, ErrNegativeParticipant
	}
	return Draft{
		roomName:     roomName,
		date:         date,
		slot:         slot,
		status:       status,
		participants: participants,
		description:  description,
	}, nil
}

// WithID is called by the store when it appends the draft.
func (d Draft) WithID(id int) Reservation {
	return Reservation{
		id:           id,
		roomName:     d.roomName,
		date:         d.date,
		slot:         d.slot,
		status:       d.status,
		participants: d.participants,
		description:  d.description,
	}
}

// ConflictsWith reports whether d would double-book an active reservation:
// same room, same date, intersecting slots.
func (d Draft) ConflictsWith(r Reservation) bool {
	return r.IsActive() &&
		r.roomName == d.roomName &&
		r.date == d.date &&
		d.slot.Overlaps(r.slot)
}

func (d Draft) RoomName() string         { return d.roomName }
func (d Draft) Date() Date               { return d.date }
func (d Draft) TimeSlot() TimeSlot       { return d.slot }
func (d Draft) Status() Status           { return d.status }
func (d Draft) Participants() int        { return d.participants }
func (d Draft) Description() Description { return d.description }

type Reservation struct {
	id           int
	roomName     string
	date         Date
	slot         TimeSlot
	status       Status
	participants int
	description  Description
}

func (r Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r Reservation) ID() int                  { return r.id }
func (r Reservation) RoomName() string         { return r.roomName }
func (r Reservation) Date() Date               { return r.date }
func (r Reservation) TimeSlot() TimeSlot       { return r.slot }
func (r Reservation) StartTime() TimeOfDay     { return r.slot.start }
func (r Reservation) EndTime() TimeOfDay       { return r.slot.end }
func (r Reservation) Status() Status           { return r.status }
func (r Reservation) Participants() int        { return r.participants }
func (r Reservation) Description() Description { return r.description }
