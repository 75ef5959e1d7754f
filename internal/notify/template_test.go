package notify

import (
	"testing"

	"care-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleBooking() *entity.Booking {
	return &entity.Booking{
		Base:         entity.Base{ID: uuid.New()},
		ServiceID:    "baby-care",
		ServiceName:  "Baby Care",
		Duration:     2,
		DurationUnit: entity.DurationUnitDays,
		Location: entity.Location{
			Division: "Dhaka",
			District: "Dhaka",
			City:     "Dhaka",
			Area:     "Uttara",
			Address:  "House 12, Road 3",
		},
		TotalCost: 8000,
		Status:    entity.BookingStatusPending,
		UserEmail: "rahim@example.com",
		UserName:  "Rahim Uddin",
	}
}

func TestRenderStatusUpdateEmail(t *testing.T) {
	booking := sampleBooking()

	html := renderStatusUpdateEmail(booking, entity.BookingStatusConfirmed)

	assert.Contains(t, html, "Confirmed")
	assert.Contains(t, html, statusStyles[entity.BookingStatusConfirmed].bg)
	assert.Contains(t, html, "Baby Care")
	assert.Contains(t, html, "2 day(s)")
	assert.Contains(t, html, "&#2547;8000")
	assert.Contains(t, html, "Uttara, Dhaka, Dhaka")
}

func TestRenderStatusUpdateEmail_UnknownStatusFallsBack(t *testing.T) {
	html := renderStatusUpdateEmail(sampleBooking(), entity.BookingStatus("Bogus"))

	assert.Contains(t, html, statusStyles[entity.BookingStatusPending].bg)
}

func TestRenderInvoiceEmail(t *testing.T) {
	booking := sampleBooking()

	html := renderInvoiceEmail(booking)

	assert.Contains(t, html, "Thank you, Rahim Uddin!")
	assert.Contains(t, html, booking.ID.String())
	assert.Contains(t, html, "pending confirmation")
}
