package room

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity = errors.New("room capacity must be greater than zero")
	ErrInvalidRoomID   = errors.New("room id must be greater than zero")
	ErrDuplicateRoomID = errors.New("duplicate room id")
	ErrEmptyEquipment  = errors.New("equipment name cannot be empty")
)

const (
	MaxRoomNameLength = 255
)

// Room is immutable once built; accessors hand out copies of its slices.
type Room struct {
	id          int
	name        string
	capacity    int
	equipment   []string
	image       string
	description string
}

func NewRoom(id int, name string, capacity int, equipment []string, image, description string) (*Room, error) {
	if id <= 0 {
		return nil, ErrInvalidRoomID
	}

	if err := validateRoomName(name); err != nil {
		return nil, err
	}

	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	eq, err := normalizeEquipment(equipment)
	if err != nil {
		return nil, err
	}

	return &Room{
		id:          id,
		name:        strings.TrimSpace(name),
		capacity:    capacity,
		equipment:   eq,
		image:       strings.TrimSpace(image),
		description: strings.TrimSpace(description),
	}, nil
}

func (r *Room) HasEquipment(item string) bool {
	return slices.Contains(r.equipment, item)
}

// CanHost reports whether the room seats the given number of participants.
func (r *Room) CanHost(participants int) bool {
	return participants <= r.capacity
}

func validateRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

// equipment is a set: duplicates are dropped, order of first appearance kept
func normalizeEquipment(items []string) ([]string, error) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, ErrEmptyEquipment
		}
		if !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *Room) ID() int             { return r.id }
func (r *Room) Name() string        { return r.name }
func (r *Room) Capacity() int       { return r.capacity }
func (r *Room) Equipment() []string { return slices.Clone(r.equipment) }
func (r *Room) Image() string       { return r.image }
func (r *Room) Description() string { return r.description }
