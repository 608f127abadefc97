package request

import (
	"room-booking/internal/domain/reservation"
)

// CreateReservationRequest leaves the four booking fields unvalidated by
// binding so that a missing field is reported by the booking rules.
type CreateReservationRequest struct {
	RoomID       int    `json:"room_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Participants int    `json:"participants" binding:"omitempty,min=0"`
	Description  string `json:"description" binding:"max=500"`
}

func (r CreateReservationRequest) ToForm() reservation.BookingForm {
	return reservation.BookingForm{
		RoomID:       r.RoomID,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Participants: r.Participants,
		Description:  r.Description,
	}
}

type RoomFilterRequest struct {
	MinCapacity int      `form:"min_capacity" binding:"omitempty,min=0"`
	Equipment   []string `form:"equipment"`
}

type ScheduleRequest struct {
	Date string `form:"date" binding:"required"`
}
