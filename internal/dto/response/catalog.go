package response

import "care-booking/internal/data/catalog"

type ServiceResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description,omitempty"`
	Icon             string   `json:"icon"`
	PricePerHour     float64  `json:"price_per_hour"`
	PricePerDay      float64  `json:"price_per_day"`
	Features         []string `json:"features"`
	Availability     string   `json:"availability"`
	MinBookingHours  int      `json:"min_booking_hours"`
	Rating           float64  `json:"rating"`
	TotalBookings    int      `json:"total_bookings"`
}

// Helper converters
func ServiceToResponse(svc *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:               svc.ID,
		Name:             svc.Name,
		ShortDescription: svc.ShortDescription,
		Description:      svc.Description,
		Icon:             svc.Icon,
		PricePerHour:     svc.PricePerHour,
		PricePerDay:      svc.PricePerDay,
		Features:         svc.Features,
		Availability:     svc.Availability,
		MinBookingHours:  svc.MinBookingHours,
		Rating:           svc.Rating,
		TotalBookings:    svc.TotalBookings,
	}
}

func ServicesToResponse(services []catalog.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ServiceToResponse(&services[i])
	}
	return out
}
