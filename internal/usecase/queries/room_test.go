//go:build unit

package queries_test

import (
	"context"
	"testing"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedRoomViews() []*queries.RoomView {
	seed := builder.SeedRooms()
	views := make([]*queries.RoomView, len(seed))
	for i, b := range seed {
		views[i] = b.BuildView()
	}
	return views
}

func TestRoomQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	rooms := queriesmock.NewMockRoomReadStore(ctrl)
	q := queries.NewRoomQueries(rooms, queriesmock.NewMockReservationReadStore(ctrl))

	filters := queries.RoomFilters{MinCapacity: 10, Equipment: []string{"Wifi"}}
	want := seedRoomViews()[:1]
	rooms.EXPECT().FindFiltered(gomock.Any(), filters).Return(want, nil)

	got, err := q.List(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRoomQueriesGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	rooms := queriesmock.NewMockRoomReadStore(ctrl)
	q := queries.NewRoomQueries(rooms, queriesmock.NewMockReservationReadStore(ctrl))

	t.Run("error: unknown room", func(t *testing.T) {
		rooms.EXPECT().FindByID(gomock.Any(), 42).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "room 42", nil))

		_, err := q.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, queries.ErrRoomNotFound)
	})

	t.Run("error: equipment failure is marked", func(t *testing.T) {
		rooms.EXPECT().Equipment(gomock.Any()).Return(nil, assert.AnError)

		_, err := q.Equipment(context.Background())
		assert.True(t, errs.Is(err, queries.ErrRoomQueryFailed))
	})
}

func TestRoomQueriesDaySchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	rooms := queriesmock.NewMockRoomReadStore(ctrl)
	reservations := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewRoomQueries(rooms, reservations)
	sid := uuid.New()

	t.Run("success: confirmed reservations fill [start, end) hours", func(t *testing.T) {
		morning := builder.NewReservationBuilder().BuildView()
		otherDay := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ID = 2 }).
			WithDate("2024-03-26").BuildView()
		pending := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ID = 3 }).
			WithRoom(2, "Salle de Réunion B").BuildView()
		pending.Status = "pending"
		afternoon := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ID = 4; b.Description = "" }).
			WithRoom(3, "Salle de Formation C").
			WithSlot("14:30", "16:00").BuildView()

		rooms.EXPECT().FindAll(gomock.Any()).Return(seedRoomViews(), nil)
		reservations.EXPECT().FindAll(gomock.Any(), sid).
			Return([]*queries.ReservationView{morning, otherDay, pending, afternoon}, nil)

		got, err := q.DaySchedule(context.Background(), sid, "2024-03-25")
		require.NoError(t, err)

		assert.Equal(t, "2024-03-25", got.Date)
		assert.Equal(t, "25 mars 2024", got.FormattedDate)
		require.Len(t, got.Rooms, 3)
		require.Len(t, got.Rows, queries.ScheduleLastHour-queries.ScheduleFirstHour+1)
		assert.Equal(t, "08:00", got.Rows[0].Hour)
		assert.Equal(t, "20:00", got.Rows[len(got.Rows)-1].Hour)

		reserved := map[string][]int{}
		for _, row := range got.Rows {
			require.Len(t, row.Cells, 3)
			for _, cell := range row.Cells {
				if cell.Reserved {
					reserved[row.Hour] = append(reserved[row.Hour], cell.ReservationID)
				}
			}
		}
		assert.Equal(t, map[string][]int{
			"09:00": {1},
			"10:00": {1},
			"15:00": {4},
		}, reserved)

		nine := got.Rows[1].Cells[0]
		assert.Equal(t, queries.ScheduleCell{RoomID: 1, Reserved: true, ReservationID: 1, Description: "Réunion d'équipe"}, nine)
	})

	t.Run("error: invalid date", func(t *testing.T) {
		_, err := q.DaySchedule(context.Background(), sid, "25/03/2024")
		assert.True(t, errs.Is(err, queries.ErrInvalidDate))
	})

	t.Run("error: reservation store failure", func(t *testing.T) {
		rooms.EXPECT().FindAll(gomock.Any()).Return(seedRoomViews(), nil)
		reservations.EXPECT().FindAll(gomock.Any(), sid).Return(nil, assert.AnError)

		_, err := q.DaySchedule(context.Background(), sid, "2024-03-25")
		assert.True(t, errs.Is(err, queries.ErrReservationQueryFailed))
	})
}
