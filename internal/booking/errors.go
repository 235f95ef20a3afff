// Package booking implements the in-memory reservation engine: the catalog
// of movies, theaters and shows, the per-show seat inventory, and the
// booking protocol that keeps seats from being sold twice. These sentinel
// values let higher layers such as HTTP handlers distinguish between
// failure scenarios. For example, ErrMovieExists signals a case-insensitive
// title collision and carries no state, while ErrSeatTaken means a booking
// request touched a seat that another caller already committed.
package booking

import "errors"

// ErrMovieExists is returned by AddMovie when a movie with the same
// title (compared case-insensitively) is already registered. The id of
// the existing movie is returned alongside it.
var ErrMovieExists = errors.New("movie already exists")

// ErrTheaterExists is the theater counterpart of ErrMovieExists.
var ErrTheaterExists = errors.New("theater already exists")

// ErrShowExists is returned by CreateShow when a show already exists for
// the exact (movie, theater) pair. Handlers should translate this into
// an HTTP 409 response.
var ErrShowExists = errors.New("show already exists for this movie and theater")

// ErrMovieNotFound is returned when a movie id does not resolve to a
// registered movie.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTheaterNotFound is returned when a theater id does not resolve to a
// registered theater.
var ErrTheaterNotFound = errors.New("theater not found")

// ErrShowNotFound is returned by availability and booking operations
// when the show id is unknown. Handlers should translate this into an
// HTTP 404 response.
var ErrShowNotFound = errors.New("show not found")

// ErrInvalidSeat is returned when a seat label cannot be decoded, i.e.
// it falls outside the grammar <row letter><1..TotalSeats>.
var ErrInvalidSeat = errors.New("invalid seat")

// ErrDuplicateSeat is returned when the same seat appears more than once
// within a single booking request.
var ErrDuplicateSeat = errors.New("duplicate seat in request")

// ErrSeatTaken is returned when a requested seat is already booked. The
// whole request is rejected and no seat in it is booked.
var ErrSeatTaken = errors.New("seat already booked")
