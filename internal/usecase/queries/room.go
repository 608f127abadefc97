package queries

import (
	"context"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/datefmt"
	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound    = errs.New("room not found")
	ErrRoomQueryFailed = errs.New("room query failed")
	ErrInvalidDate     = errs.New("invalid schedule date")
)

// Working hours shown by the day schedule, both ends inclusive.
const (
	ScheduleFirstHour = 8
	ScheduleLastHour  = 20
)

// RoomFilters is the zero-value-matches-all room filter.
type RoomFilters struct {
	MinCapacity int
	Equipment   []string
}

type RoomReadStore interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindFiltered(ctx context.Context, filters RoomFilters) ([]*RoomView, error)
	FindByID(ctx context.Context, id int) (*RoomView, error)
	Equipment(ctx context.Context) ([]string, error)
}

type RoomQueries interface {
	List(ctx context.Context, filters RoomFilters) ([]*RoomView, error)
	GetByID(ctx context.Context, id int) (*RoomView, error)
	Equipment(ctx context.Context) ([]string, error)
	DaySchedule(ctx context.Context, sessionID uuid.UUID, date string) (*DaySchedule, error)
}

type roomQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
}

func NewRoomQueries(rooms RoomReadStore, reservations ReservationReadStore) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, reservations: reservations}
}

func (q *roomQueriesImpl) List(ctx context.Context, filters RoomFilters) ([]*RoomView, error) {
	rows, err := q.rooms.FindFiltered(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	return rows, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id int) (*RoomView, error) {
	rv, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	return rv, nil
}

func (q *roomQueriesImpl) Equipment(ctx context.Context) ([]string, error) {
	items, err := q.rooms.Equipment(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	return items, nil
}

// DaySchedule lays the session's confirmed reservations for date over an
// hour grid. A room is reserved at hour h when start <= h < end.
func (q *roomQueriesImpl) DaySchedule(ctx context.Context, sessionID uuid.UUID, date string) (*DaySchedule, error) {
	day, err := time.Parse(datefmt.ISODate, date)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse schedule date"), ErrInvalidDate)
	}
	date = day.Format(datefmt.ISODate)

	rooms, err := q.rooms.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	all, err := q.reservations.FindAll(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationQueryFailed)
	}

	byRoom := make(map[string][]*ReservationView)
	for _, rv := range all {
		if rv.Date == date && rv.Status == reservation.StatusConfirmed.String() {
			byRoom[rv.RoomName] = append(byRoom[rv.RoomName], rv)
		}
	}

	rows := make([]ScheduleRow, 0, ScheduleLastHour-ScheduleFirstHour+1)
	for h := ScheduleFirstHour; h <= ScheduleLastHour; h++ {
		hour, err := reservation.NewTimeOfDay(h, 0)
		if err != nil {
			return nil, errs.Wrap(err, "schedule hour")
		}
		cells := make([]ScheduleCell, len(rooms))
		for i, rm := range rooms {
			cells[i] = ScheduleCell{RoomID: rm.ID}
			for _, rv := range byRoom[rm.Name] {
				if slotOf(rv).Covers(hour) {
					cells[i].Reserved = true
					cells[i].ReservationID = rv.ID
					cells[i].Description = rv.Description
					break
				}
			}
		}
		rows = append(rows, ScheduleRow{Hour: hour.String(), Cells: cells})
	}

	return &DaySchedule{
		Date:          date,
		FormattedDate: datefmt.Format(day),
		Rooms:         rooms,
		Rows:          rows,
	}, nil
}

// slotOf rebuilds the slot of a stored reservation. Views always carry
// normalised HH:MM times; an unparsable one yields an empty slot.
func slotOf(rv *ReservationView) reservation.TimeSlot {
	start, err := reservation.ParseTimeOfDay(rv.StartTime)
	if err != nil {
		return reservation.TimeSlot{}
	}
	end, err := reservation.ParseTimeOfDay(rv.EndTime)
	if err != nil {
		return reservation.TimeSlot{}
	}
	return reservation.NewTimeSlot(start, end)
}
