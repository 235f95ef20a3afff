package booking // seat label <-> seat index codec

import "fmt"

// Seat labeling constants. Every show uses a single row of TotalSeats
// seats labeled SeatRow followed by a 1-based number ("A1".."A20"). The
// HTTP and CLI front ends rely on the same grammar when prompting for
// and validating seat input.
const (
	SeatRow    = 'A' // fixed row letter used by every seat label
	TotalSeats = 20  // seats per show
)

// SeatIndexFromLabel converts a label like "A1".."A20" to its 0-based
// seat index. It returns -1 for anything outside the grammar: a wrong
// row letter, an empty or non-digit suffix, or a number outside
// [1, TotalSeats]. The accumulator stops growing once it exceeds
// TotalSeats so arbitrarily long digit strings cannot overflow it.
func SeatIndexFromLabel(label string) int {
	if len(label) < 2 || label[0] != SeatRow {
		return -1
	}
	num := 0
	for i := 1; i < len(label); i++ {
		c := label[i]
		if c < '0' || c > '9' {
			return -1
		}
		num = num*10 + int(c-'0')
		if num > TotalSeats {
			break
		}
	}
	if num < 1 || num > TotalSeats {
		return -1
	}
	return num - 1
}

// SeatLabelFromIndex converts a 0-based seat index to its label. It is
// total for indices in [0, TotalSeats) and round-trips with
// SeatIndexFromLabel.
func SeatLabelFromIndex(idx int) string {
	return fmt.Sprintf("%c%d", SeatRow, idx+1)
}
