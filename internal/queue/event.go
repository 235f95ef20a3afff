package queue

// SeatsBookedEvent is published after a booking commits. It carries
// resolved display names and the final seat list so downstream
// consumers can log or notify without calling back into the engine.
type SeatsBookedEvent struct {
	ShowID         int64    `json:"show_id"`
	MovieTitle     string   `json:"movie_title"`
	TheaterName    string   `json:"theater_name"`
	SeatLabels     []string `json:"seats"`
	RemainingSeats int      `json:"remaining_seats"`
	BookedBy       string   `json:"booked_by"`
	BookedAt       string   `json:"booked_at"`
}
