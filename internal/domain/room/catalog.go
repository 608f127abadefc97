package room

import (
	"slices"
	"sort"
	"strings"
)

// Filter selects rooms by minimum capacity and a required equipment set.
// The zero value matches every room.
type Filter struct {
	MinCapacity int
	Equipment   []string
}

// Matches reports whether the room seats at least MinCapacity people and
// carries every required item (subset test, not exact match). Blank items,
// as sent by an empty form field, require nothing.
func (f Filter) Matches(r *Room) bool {
	if r.capacity < f.MinCapacity {
		return false
	}
	for _, item := range f.Equipment {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if !r.HasEquipment(item) {
			return false
		}
	}
	return true
}

// Catalog is the read-only room table loaded at startup.
type Catalog struct {
	rooms []*Room
	byID  map[int]*Room
}

func NewCatalog(rooms []*Room) (*Catalog, error) {
	byID := make(map[int]*Room, len(rooms))
	for _, r := range rooms {
		if _, dup := byID[r.id]; dup {
			return nil, ErrDuplicateRoomID
		}
		byID[r.id] = r
	}
	return &Catalog{
		rooms: slices.Clone(rooms),
		byID:  byID,
	}, nil
}

// List returns every room in seed order.
func (c *Catalog) List() []*Room {
	return slices.Clone(c.rooms)
}

func (c *Catalog) Filter(f Filter) []*Room {
	out := make([]*Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) FindByID(id int) (*Room, bool) {
	r, ok := c.byID[id]
	return r, ok
}

func (c *Catalog) FindByName(name string) (*Room, bool) {
	for _, r := range c.rooms {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}

// Equipment returns the sorted union of every room's equipment.
func (c *Catalog) Equipment() []string {
	seen := make(map[string]struct{})
	for _, r := range c.rooms {
		for _, item := range r.equipment {
			seen[item] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for item := range seen {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Len() int { return len(c.rooms) }
