package memstore

import (
	"errors"
	"slices"
	"sync"

	"room-booking/internal/domain/reservation"
)

var ErrSlotTaken = errors.New("slot already reserved for this room and date")

// ReservationStore is the in-memory reservation list of one session.
//
// Ids come from a monotonic counter and are never reused, so cancelling a
// reservation and booking again can't produce a duplicate id.
type ReservationStore struct {
	mu           sync.Mutex
	nextID       int
	reservations []reservation.Reservation
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		nextID:       1,
		reservations: make([]reservation.Reservation, 0),
	}
}

// Add assigns the next id and appends the draft without any conflict check.
func (s *ReservationStore) Add(d reservation.Draft) reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(d)
}

// Book is Add guarded by the double-booking rule: it fails with ErrSlotTaken
// when d overlaps an active reservation of the same room on the same date.
func (s *ReservationStore) Book(d reservation.Draft) (reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reservations {
		if d.ConflictsWith(existing) {
			return reservation.Reservation{}, ErrSlotTaken
		}
	}
	return s.appendLocked(d), nil
}

func (s *ReservationStore) appendLocked(d reservation.Draft) reservation.Reservation {
	res := d.WithID(s.nextID)
	s.nextID++
	s.reservations = append(s.reservations, res)
	return res
}

// Cancel removes the reservation with the given id. An unknown id is a
// no-op; the return value tells whether anything was removed.
func (s *ReservationStore) Cancel(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.reservations, func(r reservation.Reservation) bool {
		return r.ID() == id
	})
	if i < 0 {
		return false
	}
	s.reservations = slices.Delete(s.reservations, i, i+1)
	return true
}

// List returns a copy of the reservations in insertion order.
func (s *ReservationStore) List() []reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reservations)
}

func (s *ReservationStore) Get(id int) (reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reservations {
		if r.ID() == id {
			return r, true
		}
	}
	return reservation.Reservation{}, false
}

func (s *ReservationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}
