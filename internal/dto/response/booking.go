package response

import (
	"time"

	"care-booking/internal/data/entity"
)

type LocationResponse struct {
	Division string `json:"division"`
	District string `json:"district"`
	City     string `json:"city"`
	Area     string `json:"area"`
	Address  string `json:"address"`
}

type BookingResponse struct {
	ID           string               `json:"id"`
	ServiceID    string               `json:"service_id"`
	ServiceName  string               `json:"service_name"`
	Duration     int                  `json:"duration"`
	DurationUnit entity.DurationUnit  `json:"duration_unit"`
	Location     LocationResponse     `json:"location"`
	TotalCost    float64              `json:"total_cost"`
	Status       entity.BookingStatus `json:"status"`
	UserEmail    string               `json:"user_email"`
	UserName     string               `json:"user_name"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID.String(),
		ServiceID:    booking.ServiceID,
		ServiceName:  booking.ServiceName,
		Duration:     booking.Duration,
		DurationUnit: booking.DurationUnit,
		Location: LocationResponse{
			Division: booking.Location.Division,
			District: booking.Location.District,
			City:     booking.Location.City,
			Area:     booking.Location.Area,
			Address:  booking.Location.Address,
		},
		TotalCost: booking.TotalCost,
		Status:    booking.Status,
		UserEmail: booking.UserEmail,
		UserName:  booking.UserName,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}
