//go:build unit || e2e

package builder

import (
	"slices"

	"room-booking/internal/domain/room"
	"room-booking/internal/usecase/queries"
)

type RoomBuilder struct {
	ID          int
	Name        string
	Capacity    int
	Equipment   []string
	Image       string
	Description string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          1,
		Name:        "Salle de Conférence A",
		Capacity:    20,
		Equipment:   []string{"Projecteur", "Wifi", "Visioconférence"},
		Image:       "https://images.unsplash.com/photo-1497366811353-6870744d04b2?w=1920&q=80",
		Description: "Grande salle moderne équipée pour les conférences et présentations importantes",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.ID, b.Name, b.Capacity, b.Equipment, b.Image, b.Description)
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:          b.ID,
		Name:        b.Name,
		Capacity:    b.Capacity,
		Equipment:   slices.Clone(b.Equipment),
		Image:       b.Image,
		Description: b.Description,
	}
}

// SeedRooms mirrors the embedded catalog seed.
func SeedRooms() []*RoomBuilder {
	return []*RoomBuilder{
		NewRoomBuilder(),
		NewRoomBuilder().With(func(b *RoomBuilder) {
			b.ID = 2
			b.Name = "Salle de Réunion B"
			b.Capacity = 8
			b.Equipment = []string{"Écran", "Wifi"}
			b.Image = "https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=1920&q=80"
			b.Description = "Salle intimiste idéale pour les réunions d'équipe"
		}),
		NewRoomBuilder().With(func(b *RoomBuilder) {
			b.ID = 3
			b.Name = "Salle de Formation C"
			b.Capacity = 15
			b.Equipment = []string{"Projecteur", "Wifi", "Tableaux"}
			b.Image = "https://images.unsplash.com/photo-1497366216548-37526070297c?w=1920&q=80"
			b.Description = "Salle spacieuse adaptée aux sessions de formation"
		}),
	}
}
