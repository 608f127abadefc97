package readstore

import (
	"context"
	"strconv"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomReadStore struct {
	catalog *room.Catalog
}

func NewRoomReadStore(catalog *room.Catalog) *RoomReadStore {
	return &RoomReadStore{
		catalog: catalog,
	}
}

func (r *RoomReadStore) FindAll(_ context.Context) ([]*queries.RoomView, error) {
	return toRoomViews(r.catalog.List())
}

func (r *RoomReadStore) FindFiltered(_ context.Context, filters queries.RoomFilters) ([]*queries.RoomView, error) {
	return toRoomViews(r.catalog.Filter(room.Filter{
		MinCapacity: filters.MinCapacity,
		Equipment:   filters.Equipment,
	}))
}

func (r *RoomReadStore) FindByID(_ context.Context, id int) (*queries.RoomView, error) {
	rm, ok := r.catalog.FindByID(id)
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "room "+strconv.Itoa(id)+" not found", nil)
	}
	return toRoomView(rm)
}

func (r *RoomReadStore) Equipment(_ context.Context) ([]string, error) {
	return r.catalog.Equipment(), nil
}

// toRoomView fills the view from the room's getters.
func toRoomView(rm *room.Room) (*queries.RoomView, error) {
	var view queries.RoomView
	if err := copier.Copy(&view, rm); err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to map room", err)
	}
	return &view, nil
}

func toRoomViews(rooms []*room.Room) ([]*queries.RoomView, error) {
	result := make([]*queries.RoomView, len(rooms))
	for i, rm := range rooms {
		view, err := toRoomView(rm)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}
