package booking

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// Display sentinels returned for unknown ids. Lookup helpers never fail;
// callers that need a hard failure use the show-level operations instead.
const (
	UnknownMovie   = "Unknown Movie"
	UnknownTheater = "Unknown Theater"
)

// pairKey is the composite lookup key preventing duplicate shows for the
// same movie/theater combination.
type pairKey struct {
	movieID   int
	theaterID int
}

// Service is the catalog store and reservation engine. A single
// reader/writer lock covers the primary maps and every derived index
// together, so creations and duplicate checks are serialized while
// lookups run concurrently. Seat-level state is never touched under this
// lock: booking and availability resolve a *Show handle under the read
// lock, release it, and then work under that show's own mutex.
type Service struct {
	mu       sync.RWMutex
	movies   map[int]*Movie
	theaters map[int]*Theater
	shows    map[int64]*Show

	movieIDByTitle  map[string]int       // lowercase title -> movie id, duplicate prevention
	theaterIDByName map[string]int       // lowercase name -> theater id
	showIDByPair    map[pairKey]int64    // (movie, theater) -> show id
	activeMovies    mapset.Set[int]      // movies with at least one show
	movieTheaters   map[int]mapset.Set[int] // movie id -> theaters screening it

	movieSeq   atomic.Int64 // movie id counter, never reused
	theaterSeq atomic.Int64 // theater id counter
	showSeq    atomic.Int64 // show id counter, independent namespace
}

// NewService returns an empty catalog ready for concurrent use.
func NewService() *Service {
	return &Service{
		movies:          make(map[int]*Movie),
		theaters:        make(map[int]*Theater),
		shows:           make(map[int64]*Show),
		movieIDByTitle:  make(map[string]int),
		theaterIDByName: make(map[string]int),
		showIDByPair:    make(map[pairKey]int64),
		activeMovies:    mapset.NewThreadUnsafeSet[int](),
		movieTheaters:   make(map[int]mapset.Set[int]),
	}
}

// AddMovie registers a movie and returns its new id. Titles are
// deduplicated case-insensitively; on a collision the id of the existing
// movie is returned together with ErrMovieExists. The duplicate check
// and the map inserts happen as one step under the write lock so two
// racing callers cannot both register the same title.
func (s *Service) AddMovie(title string) (int, error) {
	key := strings.ToLower(title)

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.movieIDByTitle[key]; ok {
		return id, ErrMovieExists
	}
	id := int(s.movieSeq.Add(1))
	s.movies[id] = &Movie{ID: id, Title: title}
	s.movieIDByTitle[key] = id
	return id, nil
}

// AddTheater registers a theater; it mirrors AddMovie.
func (s *Service) AddTheater(name string) (int, error) {
	key := strings.ToLower(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.theaterIDByName[key]; ok {
		return id, ErrTheaterExists
	}
	id := int(s.theaterSeq.Add(1))
	s.theaters[id] = &Theater{ID: id, Name: name}
	s.theaterIDByName[key] = id
	return id, nil
}

// CreateShow schedules a movie into a theater with a fresh all-free seat
// inventory and returns the new show id. It fails with ErrMovieNotFound
// or ErrTheaterNotFound for unknown references and with ErrShowExists
// when a show for the exact pair is already scheduled. The pair lookup,
// the active-movie set and the movie->theater index are updated together
// under the write lock so listings never observe a half-registered show.
func (s *Service) CreateShow(movieID, theaterID int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[movieID]; !ok {
		return 0, ErrMovieNotFound
	}
	if _, ok := s.theaters[theaterID]; !ok {
		return 0, ErrTheaterNotFound
	}
	key := pairKey{movieID: movieID, theaterID: theaterID}
	if _, ok := s.showIDByPair[key]; ok {
		return 0, ErrShowExists
	}

	id := s.showSeq.Add(1)
	s.shows[id] = newShow(id, movieID, theaterID)
	s.showIDByPair[key] = id
	s.activeMovies.Add(movieID)
	set, ok := s.movieTheaters[movieID]
	if !ok {
		set = mapset.NewThreadUnsafeSet[int]()
		s.movieTheaters[movieID] = set
	}
	set.Add(theaterID)
	return id, nil
}

// getShow copies out the shared show handle under the read lock. The
// caller works against the handle after the lock is released, so a slow
// booking never blocks unrelated catalog reads.
func (s *Service) getShow(id int64) (*Show, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	show, ok := s.shows[id]
	return show, ok
}

// AvailableSeats returns the labels of every free seat for the show in
// ascending order, or ErrShowNotFound for an unknown id.
func (s *Service) AvailableSeats(showID int64) ([]string, error) {
	show, ok := s.getShow(showID)
	if !ok {
		return nil, ErrShowNotFound
	}
	return show.AvailableSeats(), nil
}

// BookSeats books a batch of seat labels on a show. The request either
// books every seat it names or none: see Show.Book for the validation
// order. A nil error means the whole batch was committed.
func (s *Service) BookSeats(showID int64, labels []string) error {
	show, ok := s.getShow(showID)
	if !ok {
		return ErrShowNotFound
	}
	return show.Book(labels)
}

// MovieTitle resolves a movie id to its title, or UnknownMovie when the
// id is not registered. It never fails so formatting code can call it
// unconditionally.
func (s *Service) MovieTitle(movieID int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movieTitle(movieID)
}

// TheaterName resolves a theater id to its name, or UnknownTheater.
func (s *Service) TheaterName(theaterID int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theaterName(theaterID)
}

// movieTitle and theaterName are the lock-free variants used by callers
// that already hold the catalog lock.
func (s *Service) movieTitle(movieID int) string {
	if m, ok := s.movies[movieID]; ok {
		return m.Title
	}
	return UnknownMovie
}

func (s *Service) theaterName(theaterID int) string {
	if t, ok := s.theaters[theaterID]; ok {
		return t.Name
	}
	return UnknownTheater
}

// AllMovies lists every registered movie ordered by id.
func (s *Service) AllMovies() []Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Movie, 0, len(s.movies))
	for _, m := range s.movies {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllTheaters lists every registered theater ordered by id.
func (s *Service) AllTheaters() []Theater {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Theater, 0, len(s.theaters))
	for _, t := range s.theaters {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ActiveMovies lists the movies that have at least one scheduled show,
// ordered by id. The active set is maintained incrementally by
// CreateShow rather than derived by scanning the shows map.
func (s *Service) ActiveMovies() []Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Movie, 0, s.activeMovies.Cardinality())
	for id := range s.activeMovies.Iter() {
		if m, ok := s.movies[id]; ok {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TheatersForMovie lists the theaters with a show scheduled for the
// movie, ordered by id. An unknown or inactive movie yields an empty
// slice.
func (s *Service) TheatersForMovie(movieID int) []Theater {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.movieTheaters[movieID]
	if !ok {
		return nil
	}
	out := make([]Theater, 0, set.Cardinality())
	for id := range set.Iter() {
		if t, ok := s.theaters[id]; ok {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ShowInfoByID returns the listing view of a single show, or
// ErrShowNotFound. The catalog lock is released before the show's
// available count is read under its own lock.
func (s *Service) ShowInfoByID(showID int64) (ShowInfo, error) {
	s.mu.RLock()
	show, ok := s.shows[showID]
	if !ok {
		s.mu.RUnlock()
		return ShowInfo{}, ErrShowNotFound
	}
	title := s.movieTitle(show.MovieID)
	name := s.theaterName(show.TheaterID)
	s.mu.RUnlock()

	return ShowInfo{
		ID:             show.ID,
		MovieTitle:     title,
		TheaterName:    name,
		AvailableSeats: show.AvailableCount(),
	}, nil
}

// AllShows returns the listing view of every show ordered by id. Titles
// and names are resolved and the show handles copied out under the read
// lock; the per-show available counts are then read under each show's
// own lock after the catalog lock is released.
func (s *Service) AllShows() []ShowInfo {
	s.mu.RLock()
	handles := make([]*Show, 0, len(s.shows))
	titles := make([]string, 0, len(s.shows))
	names := make([]string, 0, len(s.shows))
	for _, show := range s.shows {
		handles = append(handles, show)
		titles = append(titles, s.movieTitle(show.MovieID))
		names = append(names, s.theaterName(show.TheaterID))
	}
	s.mu.RUnlock()

	out := make([]ShowInfo, 0, len(handles))
	for i, show := range handles {
		out = append(out, ShowInfo{
			ID:             show.ID,
			MovieTitle:     titles[i],
			TheaterName:    names[i],
			AvailableSeats: show.AvailableCount(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
