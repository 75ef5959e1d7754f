package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatus("Bogus").IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("Confirmed")
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, status)

	// Statuses are case sensitive on the wire
	_, err = ParseBookingStatus("confirmed")
	assert.Error(t, err)

	_, err = ParseBookingStatus("Shipped")
	assert.Error(t, err)
}

func TestLocationIsComplete(t *testing.T) {
	loc := Location{
		Division: "Dhaka",
		District: "Dhaka",
		City:     "Dhaka",
		Area:     "Uttara",
		Address:  "House 12, Road 3",
	}
	assert.True(t, loc.IsComplete())

	loc.Area = ""
	assert.False(t, loc.IsComplete())
}

func TestBookingIsOwnedBy(t *testing.T) {
	b := &Booking{UserEmail: "rahim@example.com"}

	assert.True(t, b.IsOwnedBy("rahim@example.com"))
	assert.False(t, b.IsOwnedBy("karim@example.com"))
}
