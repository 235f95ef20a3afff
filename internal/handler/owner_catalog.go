package handler // owner-only handlers that mutate the catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/contactanuptop/movie-booking/internal/booking"
)

// OwnerHandler groups the catalog mutations reserved for the OWNER
// role: registering movies and theaters and scheduling shows. All
// methods assume JWT authentication and role validation already ran in
// middleware.
type OwnerHandler struct {
	Svc *booking.Service
}

// NewOwnerHandler constructs an OwnerHandler. The service must be non-nil.
func NewOwnerHandler(svc *booking.Service) *OwnerHandler {
	if svc == nil {
		panic("nil booking service passed to NewOwnerHandler")
	}
	return &OwnerHandler{Svc: svc}
}

// CreateMovie handles POST /v1/movies. Titles are trimmed and
// deduplicated case-insensitively; a duplicate answers 409 and includes
// the id of the already registered movie so clients can use it directly.
func (h *OwnerHandler) CreateMovie(c echo.Context) error {
	var body struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	title := strings.TrimSpace(body.Title)
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	id, err := h.Svc.AddMovie(title)
	if errors.Is(err, booking.ErrMovieExists) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "movie already exists", "id": id})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "title": title})
}

// CreateTheater handles POST /v1/theaters; it mirrors CreateMovie.
func (h *OwnerHandler) CreateTheater(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	id, err := h.Svc.AddTheater(name)
	if errors.Is(err, booking.ErrTheaterExists) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "theater already exists", "id": id})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "name": name})
}

// CreateShow handles POST /v1/shows. It schedules a movie into a
// theater with a fresh seat inventory. Unknown references answer 404
// and a duplicate (movie, theater) pair answers 409.
func (h *OwnerHandler) CreateShow(c echo.Context) error {
	var body struct {
		MovieID   int `json:"movie_id"`
		TheaterID int `json:"theater_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.MovieID <= 0 || body.TheaterID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id and theater_id are required"})
	}
	id, err := h.Svc.CreateShow(body.MovieID, body.TheaterID)
	switch {
	case errors.Is(err, booking.ErrMovieNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	case errors.Is(err, booking.ErrTheaterNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
	case errors.Is(err, booking.ErrShowExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "show already exists for this movie and theater"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":              id,
		"movie_title":     h.Svc.MovieTitle(body.MovieID),
		"theater_name":    h.Svc.TheaterName(body.TheaterID),
		"available_seats": booking.TotalSeats,
	})
}
