package booking

import (
	"fmt"
	"sync"
)

// Show is one screening of a movie in a theater together with its seat
// inventory. The occupancy vector and the cached available count are the
// only mutable state in the engine; both are guarded by the show's own
// mutex so bookings on different shows never contend with each other.
// The invariant available == number of false entries in seats holds
// whenever the mutex is not held by a booking in progress.
type Show struct {
	ID        int64 // show identifier, own namespace independent of movie/theater ids
	MovieID   int   // movie being screened
	TheaterID int   // theater hosting the screening

	mu        sync.Mutex       // guards seats and available
	seats     [TotalSeats]bool // true = booked
	available int              // cached count of free seats
}

// newShow returns a Show with every seat free. Callers register it in
// the catalog under the write lock.
func newShow(id int64, movieID, theaterID int) *Show {
	return &Show{
		ID:        id,
		MovieID:   movieID,
		TheaterID: theaterID,
		available: TotalSeats,
	}
}

// AvailableSeats snapshots the free seats under the show lock and
// returns their labels in ascending index order.
func (s *Show) AvailableSeats() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := make([]string, 0, s.available)
	for i := 0; i < TotalSeats; i++ {
		if !s.seats[i] {
			labels = append(labels, SeatLabelFromIndex(i))
		}
	}
	return labels
}

// AvailableCount returns the cached number of free seats.
func (s *Show) AvailableCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

// Book validates and commits a batch of seat labels as one atomic step
// under the show lock. Validation happens for every label before any
// seat is touched: undecodable labels fail with ErrInvalidSeat, repeats
// within the request with ErrDuplicateSeat, and seats already booked
// with ErrSeatTaken. Only when the whole batch passes are the seats
// marked booked and the cached count decremented, so a request books
// either all of its seats or none of them.
func (s *Show) Book(labels []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var seen [TotalSeats]bool
	indices := make([]int, 0, len(labels))
	for _, lbl := range labels {
		idx := SeatIndexFromLabel(lbl)
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrInvalidSeat, lbl)
		}
		if seen[idx] {
			return fmt.Errorf("%w: %s", ErrDuplicateSeat, lbl)
		}
		seen[idx] = true
		if s.seats[idx] {
			return fmt.Errorf("%w: %s", ErrSeatTaken, lbl)
		}
		indices = append(indices, idx)
	}

	for _, idx := range indices {
		s.seats[idx] = true
		s.available--
	}
	return nil
}
