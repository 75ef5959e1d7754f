package entity

import "fmt"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type DurationUnit string

const (
	DurationUnitHours DurationUnit = "hours"
	DurationUnitDays  DurationUnit = "days"
)

// HoursPerDay converts a per-hour rate into the per-day total.
const HoursPerDay = 8

// validTransitions is the booking lifecycle. Completed and Cancelled are
// terminal. Who may request a transition is decided by the booking service,
// not here.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// Location is the normalized service address. All five fields are required
// for a booking to be valid.
type Location struct {
	Division string `db:"division"`
	District string `db:"district"`
	City     string `db:"city"`
	Area     string `db:"area"`
	Address  string `db:"address"`
}

func (l Location) IsComplete() bool {
	return l.Division != "" && l.District != "" && l.City != "" && l.Area != "" && l.Address != ""
}

type Booking struct {
	Base
	ServiceID    string       `db:"service_id"`
	ServiceName  string       `db:"service_name"`
	Duration     int          `db:"duration"`
	DurationUnit DurationUnit `db:"duration_unit"`
	Location     Location
	TotalCost    float64       `db:"total_cost"`
	Status       BookingStatus `db:"status"`
	UserID       string        `db:"user_id"`
	UserEmail    string        `db:"user_email"`
	UserName     string        `db:"user_name"`
}

// IsOwnedBy reports whether the given email is the booking owner's.
func (b *Booking) IsOwnedBy(email string) bool {
	return b.UserEmail == email
}
