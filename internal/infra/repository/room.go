package repository

import (
	"context"
	"strconv"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
)

type RoomRepository struct {
	catalog *room.Catalog
}

func NewRoomRepository(catalog *room.Catalog) *RoomRepository {
	return &RoomRepository{
		catalog: catalog,
	}
}

func (r *RoomRepository) FindByID(_ context.Context, id int) (*room.Room, error) {
	rm, ok := r.catalog.FindByID(id)
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "room "+strconv.Itoa(id)+" not found", nil)
	}
	return rm, nil
}
