package booking

// Movie represents a film that can be scheduled into shows. Movies are
// immutable once created and are never deleted; duplicate titles are
// rejected case-insensitively at creation time.
//
// Fields:
//  ID    – positive integer identifier, assigned monotonically from 1.
//  Title – display title exactly as entered by the caller.
type Movie struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Theater represents a venue that can host shows. Like movies, theaters
// are immutable once created and keep the name casing the caller used.
type Theater struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ShowInfo is the read-only listing view of a show used by the browse
// endpoints and the CLI: identifiers are resolved to display names and
// the seat inventory is reduced to its available count.
type ShowInfo struct {
	ID             int64  `json:"id"`
	MovieTitle     string `json:"movie_title"`
	TheaterName    string `json:"theater_name"`
	AvailableSeats int    `json:"available_seats"`
}
