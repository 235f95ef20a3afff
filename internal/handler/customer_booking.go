package handler // authenticated booking endpoint

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/contactanuptop/movie-booking/internal/booking"
	"github.com/contactanuptop/movie-booking/internal/queue"
)

// EventPublisher sends a seats-booked event to the message broker. It
// is a function value so tests and broker-less deployments can leave it
// nil.
type EventPublisher func(ctx context.Context, event queue.SeatsBookedEvent) error

// CustomerHandler performs seat bookings on behalf of authenticated
// callers. The booking itself is atomic inside the engine; the event
// publish afterwards is best-effort and never affects the result the
// caller sees.
type CustomerHandler struct {
	Svc     *booking.Service
	Publish EventPublisher
}

// NewCustomerHandler constructs a CustomerHandler. The service must be
// non-nil; publish may be nil to disable event publishing.
func NewCustomerHandler(svc *booking.Service, publish EventPublisher) *CustomerHandler {
	if svc == nil {
		panic("nil booking service passed to NewCustomerHandler")
	}
	return &CustomerHandler{Svc: svc, Publish: publish}
}

// BookSeats handles POST /v1/shows/:id/book. The body carries a "seats"
// array of labels ("A1".."A20"). The whole request books atomically or
// not at all: an invalid label, an in-request duplicate or an already
// booked seat answers 400 and leaves the inventory untouched. Unknown
// shows answer 404. On success the remaining free seats are returned
// and a SeatsBookedEvent is published asynchronously.
func (h *CustomerHandler) BookSeats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	showID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || showID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	var body struct {
		Seats []string `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats is required"})
	}

	err = h.Svc.BookSeats(showID, body.Seats)
	switch {
	case errors.Is(err, booking.ErrShowNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	case errors.Is(err, booking.ErrInvalidSeat),
		errors.Is(err, booking.ErrDuplicateSeat),
		errors.Is(err, booking.ErrSeatTaken):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	remaining, err := h.Svc.AvailableSeats(showID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load availability"})
	}

	if h.Publish != nil {
		event := queue.SeatsBookedEvent{
			ShowID:         showID,
			SeatLabels:     body.Seats,
			RemainingSeats: len(remaining),
			BookedBy:       userID,
			BookedAt:       time.Now().UTC().Format(time.RFC3339),
		}
		if info, err := h.Svc.ShowInfoByID(showID); err == nil {
			event.MovieTitle = info.MovieTitle
			event.TheaterName = info.TheaterName
		}
		// Fire and forget: the HTTP response must not wait on the broker.
		go func() { _ = h.Publish(context.Background(), event) }()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"show_id":   showID,
		"booked":    body.Seats,
		"remaining": len(remaining),
	})
}
