package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatLabelRoundTrip(t *testing.T) {
	for i := 0; i < TotalSeats; i++ {
		label := SeatLabelFromIndex(i)
		assert.Equal(t, i, SeatIndexFromLabel(label), "label %s should decode back to %d", label, i)
	}
}

func TestSeatIndexFromLabel_Bounds(t *testing.T) {
	assert.Equal(t, 0, SeatIndexFromLabel("A1"))
	assert.Equal(t, TotalSeats-1, SeatIndexFromLabel("A20"))
	assert.Equal(t, 19, SeatIndexFromLabel("A020"), "leading zeros still decode")
}

func TestSeatIndexFromLabel_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		label string
	}{
		{"empty", ""},
		{"row only", "A"},
		{"wrong row", "B1"},
		{"lowercase row", "a1"},
		{"zero", "A0"},
		{"out of range", "A21"},
		{"far out of range", "A100"},
		{"non-digit suffix", "Ax"},
		{"trailing junk", "A1x"},
		{"negative", "A-1"},
		{"whitespace", "A 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, -1, SeatIndexFromLabel(tc.label))
		})
	}
}

func TestSeatIndexFromLabel_LongDigitStringStaysBounded(t *testing.T) {
	// The accumulator stops growing past TotalSeats, so a huge digit
	// string must still come back invalid instead of wrapping around.
	label := "A1000000000000000000000000000001"
	assert.Equal(t, -1, SeatIndexFromLabel(label))
}
