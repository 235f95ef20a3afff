package main // interactive command-line front end for the booking engine

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/contactanuptop/movie-booking/internal/booking"
)

const menu = `
===== Movie Booking CLI =====
1. Add Movie
2. Add Theater
3. Create Show
4. List Movies
5. List Theaters for a Movie
6. View Available Seats
7. Book Seats
8. Exit
`

func main() {
	svc := booking.NewService()
	in := bufio.NewScanner(os.Stdin)

	// Ctrl+C drops out of the loop instead of killing the process so
	// the goodbye message still prints.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{}, 1)
	go func() {
		<-sigs
		fmt.Println("\n\nReceived interrupt, shutting down...")
		done <- struct{}{}
		os.Stdin.Close()
	}()

	for {
		select {
		case <-done:
			fmt.Println("Program terminated cleanly.")
			return
		default:
		}

		fmt.Print(menu)
		choice, ok := readInt(in, "Select option: ")
		if !ok {
			fmt.Println("\nGoodbye!")
			return
		}

		switch choice {
		case 1:
			addMovie(svc, in)
		case 2:
			addTheater(svc, in)
		case 3:
			createShow(svc, in)
		case 4:
			listMovies(svc)
		case 5:
			listTheatersForMovie(svc, in)
		case 6:
			listShows(svc)
		case 7:
			bookSeats(svc, in)
		case 8:
			fmt.Println("Exiting Movie Booking CLI.")
			return
		default:
			fmt.Fprintln(os.Stderr, "Invalid option. Please choose 1-8.")
		}
	}
}

// readLine prompts and returns the trimmed next input line; ok is false
// on EOF.
func readLine(in *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func readInt(in *bufio.Scanner, prompt string) (int, bool) {
	line, ok := readLine(in, prompt)
	if !ok || line == "" {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid number, please try again.")
		return 0, false
	}
	return n, true
}

func addMovie(svc *booking.Service, in *bufio.Scanner) {
	title, ok := readLine(in, "Enter movie title: ")
	if !ok || title == "" {
		fmt.Fprintln(os.Stderr, "Title cannot be empty.")
		return
	}
	id, err := svc.AddMovie(title)
	if errors.Is(err, booking.ErrMovieExists) {
		fmt.Fprintf(os.Stderr, "Movie %q already exists (ID: %d)\n", title, id)
		return
	}
	fmt.Printf("Movie added. ID[%d]:TITLE[%s]\n", id, title)
}

func addTheater(svc *booking.Service, in *bufio.Scanner) {
	name, ok := readLine(in, "Enter theater name: ")
	if !ok || name == "" {
		fmt.Fprintln(os.Stderr, "Theater name cannot be empty.")
		return
	}
	id, err := svc.AddTheater(name)
	if errors.Is(err, booking.ErrTheaterExists) {
		fmt.Fprintf(os.Stderr, "Theater %q already exists (ID: %d)\n", name, id)
		return
	}
	fmt.Printf("Theater added. ID[%d]:NAME[%s]\n", id, name)
}

func createShow(svc *booking.Service, in *bufio.Scanner) {
	movies := svc.AllMovies()
	theaters := svc.AllTheaters()
	if len(movies) == 0 || len(theaters) == 0 {
		fmt.Fprintln(os.Stderr, "Please add at least one movie and theater before creating a show.")
		return
	}
	if shows := svc.AllShows(); len(shows) > 0 {
		fmt.Println("Current Shows:")
		for _, s := range shows {
			fmt.Printf("  Show ID: %d | Movie: %s | Theater: %s\n", s.ID, s.MovieTitle, s.TheaterName)
		}
	}
	fmt.Println("\nAvailable Movies:")
	for _, m := range movies {
		fmt.Printf("  [%d] %s\n", m.ID, m.Title)
	}
	fmt.Println("\nAvailable Theaters:")
	for _, t := range theaters {
		fmt.Printf("  [%d] %s\n", t.ID, t.Name)
	}

	movieID, ok := readInt(in, "\nEnter movie ID: ")
	if !ok {
		return
	}
	theaterID, ok := readInt(in, "Enter theater ID: ")
	if !ok {
		return
	}
	id, err := svc.CreateShow(movieID, theaterID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Show creation failed: %v\n", err)
		return
	}
	fmt.Printf("Show created successfully. ShowID:[%d] Movie[%s] Theater[%s]\n",
		id, svc.MovieTitle(movieID), svc.TheaterName(theaterID))
}

// listMovies prints the active movies and reports whether there were any.
func listMovies(svc *booking.Service) bool {
	active := svc.ActiveMovies()
	if len(active) == 0 {
		fmt.Println("No movies currently playing.")
		return false
	}
	fmt.Println("Movies currently playing:")
	for _, m := range active {
		fmt.Printf("  [%d] %s\n", m.ID, m.Title)
	}
	return true
}

func listTheatersForMovie(svc *booking.Service, in *bufio.Scanner) {
	if !listMovies(svc) {
		return
	}
	movieID, ok := readInt(in, "\nEnter movie ID to see theaters: ")
	if !ok {
		return
	}
	theaters := svc.TheatersForMovie(movieID)
	if len(theaters) == 0 {
		fmt.Println("No theaters found for this movie.")
		return
	}
	fmt.Printf("Theaters showing %q:\n", svc.MovieTitle(movieID))
	for _, t := range theaters {
		fmt.Printf("  [%d] %s\n", t.ID, t.Name)
	}
}

func listShows(svc *booking.Service) {
	shows := svc.AllShows()
	if len(shows) == 0 {
		fmt.Println("No shows available.")
		return
	}
	fmt.Println("\nCurrent Shows:")
	for _, s := range shows {
		fmt.Printf("  Show ID: %d | Movie: %s | Theater: %s | Available Seats: %d\n",
			s.ID, s.MovieTitle, s.TheaterName, s.AvailableSeats)
	}
}

func bookSeats(svc *booking.Service, in *bufio.Scanner) {
	shows := svc.AllShows()
	if len(shows) == 0 {
		fmt.Println("No shows available.")
		return
	}
	fmt.Println("\nCurrent Shows with Available Seats:")
	for _, s := range shows {
		if s.AvailableSeats > 0 {
			fmt.Printf("  Show ID: %d | Movie: %s | Theater: %s | Available Seats: %d\n",
				s.ID, s.MovieTitle, s.TheaterName, s.AvailableSeats)
		}
	}

	showID, ok := readInt(in, "\nEnter show ID: ")
	if !ok {
		return
	}
	available, err := svc.AvailableSeats(int64(showID))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid show ID.")
		return
	}
	fmt.Printf("\nAvailable seats (%d): %s\n", len(available), strings.Join(available, " "))
	if len(available) < booking.TotalSeats {
		free := make(map[string]bool, len(available))
		for _, s := range available {
			free[s] = true
		}
		booked := make([]string, 0, booking.TotalSeats-len(available))
		for i := 0; i < booking.TotalSeats; i++ {
			if label := booking.SeatLabelFromIndex(i); !free[label] {
				booked = append(booked, label)
			}
		}
		fmt.Printf("Already Booked seats: %s\n", strings.Join(booked, " "))
	}

	line, ok := readLine(in, fmt.Sprintf("Enter seat labels (comma-separated, valid range: %c1-%c%d). Example: A1,A2 -> ",
		booking.SeatRow, booking.SeatRow, booking.TotalSeats))
	if !ok {
		return
	}
	var seats []string
	for _, tok := range strings.Split(line, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			seats = append(seats, tok)
		}
	}
	if len(seats) == 0 {
		fmt.Fprintln(os.Stderr, "No valid seats entered.")
		return
	}
	if err := svc.BookSeats(int64(showID), seats); err != nil {
		fmt.Printf("Booking failed: %v\n", err)
		return
	}
	fmt.Println("Booking successful.")
}
