//go:build unit

package readstore

import (
	"context"
	"testing"

	"room-booking/internal/infra"
	"room-booking/internal/infra/catalog"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomStore(t *testing.T) *RoomReadStore {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return NewRoomReadStore(c)
}

func TestRoomFindAll(t *testing.T) {
	store := newRoomStore(t)

	got, err := store.FindAll(context.Background())
	require.NoError(t, err)

	var want []*queries.RoomView
	for _, b := range builder.SeedRooms() {
		want = append(want, b.BuildView())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rooms mismatch (-want +got):\n%s", diff)
	}
}

func TestRoomFindFiltered(t *testing.T) {
	store := newRoomStore(t)

	tests := []struct {
		name    string
		filters queries.RoomFilters
		wantIDs []int
	}{
		{name: "no filter", filters: queries.RoomFilters{}, wantIDs: []int{1, 2, 3}},
		{name: "capacity", filters: queries.RoomFilters{MinCapacity: 15}, wantIDs: []int{1, 3}},
		{name: "equipment subset", filters: queries.RoomFilters{Equipment: []string{"Projecteur", "Wifi"}}, wantIDs: []int{1, 3}},
		{name: "both", filters: queries.RoomFilters{MinCapacity: 16, Equipment: []string{"Projecteur"}}, wantIDs: []int{1}},
		{name: "nothing matches", filters: queries.RoomFilters{Equipment: []string{"Piano"}}, wantIDs: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.FindFiltered(context.Background(), tt.filters)
			require.NoError(t, err)

			ids := make([]int, 0, len(got))
			for _, rv := range got {
				ids = append(ids, rv.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRoomFindByID(t *testing.T) {
	store := newRoomStore(t)

	rv, err := store.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, builder.SeedRooms()[1].BuildView(), rv)

	_, err = store.FindByID(context.Background(), 4)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRoomEquipment(t *testing.T) {
	store := newRoomStore(t)

	items, err := store.Equipment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Projecteur", "Tableaux", "Visioconférence", "Wifi", "Écran"}, items)
}
