package handler // unauthenticated browse endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/contactanuptop/movie-booking/internal/booking"
)

// PublicHandler exposes the read-only catalog views. These routes apply
// no authentication so guests can browse before requesting a token.
type PublicHandler struct {
	Svc *booking.Service
}

// NewPublicHandler constructs a PublicHandler. The service must be non-nil.
func NewPublicHandler(svc *booking.Service) *PublicHandler {
	if svc == nil {
		panic("nil booking service passed to NewPublicHandler")
	}
	return &PublicHandler{Svc: svc}
}

// GetMovies handles GET /v1/movies and returns every registered movie.
func (h *PublicHandler) GetMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Svc.AllMovies()})
}

// GetActiveMovies handles GET /v1/movies/active and returns only the
// movies that currently have at least one scheduled show.
func (h *PublicHandler) GetActiveMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Svc.ActiveMovies()})
}

// GetTheaters handles GET /v1/theaters.
func (h *PublicHandler) GetTheaters(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Svc.AllTheaters()})
}

// GetShows handles GET /v1/shows. Each entry resolves the movie title
// and theater name and reports the live available seat count.
func (h *PublicHandler) GetShows(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Svc.AllShows()})
}

// GetShowSeats handles GET /v1/shows/:id/seats and lists the free seat
// labels of one show in ascending order. Unknown shows answer 404.
func (h *PublicHandler) GetShowSeats(c echo.Context) error {
	showID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || showID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	seats, err := h.Svc.AvailableSeats(showID)
	if errors.Is(err, booking.ErrShowNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"show_id":   showID,
		"available": seats,
		"total":     booking.TotalSeats,
	})
}

// GetTheatersForMovie handles GET /v1/movies/:id/theaters and lists the
// theaters with a show scheduled for the movie. A movie without shows
// (or an unknown id) yields an empty list rather than an error, which
// matches how the listing is used by front ends.
func (h *PublicHandler) GetTheatersForMovie(c echo.Context) error {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	theaters := h.Svc.TheatersForMovie(movieID)
	if theaters == nil {
		theaters = []booking.Theater{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie_title": h.Svc.MovieTitle(movieID),
		"items":       theaters,
	})
}
