//go:build unit || e2e

package builder

import (
	"room-booking/internal/domain/reservation"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID           int
	RoomID       int
	RoomName     string
	Date         string
	StartTime    string
	EndTime      string
	Participants int
	Description  string
}

// NewReservationBuilder defaults to a two-hour morning booking of the
// first seeded room.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          1,
		RoomID:      1,
		RoomName:    "Salle de Conférence A",
		Date:        "2024-03-25",
		StartTime:   "09:00",
		EndTime:     "11:00",
		Description: "Réunion d'équipe",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithRoom(id int, name string) *ReservationBuilder {
	b.RoomID = id
	b.RoomName = name
	return b
}

func (b *ReservationBuilder) WithSlot(start, end string) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

// Build methods
func (b *ReservationBuilder) BuildForm() reservation.BookingForm {
	return reservation.BookingForm{
		RoomID:       b.RoomID,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Participants: b.Participants,
		Description:  b.Description,
	}
}

// BuildDraft panics on invalid builder state; tests only use it with valid data.
func (b *ReservationBuilder) BuildDraft() reservation.Draft {
	date, err := reservation.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	start, err := reservation.ParseTimeOfDay(b.StartTime)
	if err != nil {
		panic(err)
	}
	end, err := reservation.ParseTimeOfDay(b.EndTime)
	if err != nil {
		panic(err)
	}
	d, err := reservation.NewDraft(
		b.RoomName,
		date,
		reservation.NewTimeSlot(start, end),
		reservation.StatusConfirmed,
		b.Participants,
		reservation.NewDescription(b.Description),
	)
	if err != nil {
		panic(err)
	}
	return d
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:       b.RoomID,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Participants: b.Participants,
		Description:  b.Description,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		RoomName:      b.RoomName,
		Date:          b.Date,
		FormattedDate: "25 mars 2024",
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        reservation.StatusConfirmed.String(),
		Participants:  b.Participants,
		Description:   b.Description,
	}
}
