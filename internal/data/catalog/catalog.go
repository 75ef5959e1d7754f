// Package catalog holds the static home-care service catalog. It is
// read-only reference data: prices here are the single source of truth
// for booking cost calculation.
package catalog

// Service describes one bookable care service.
type Service struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Icon             string   `json:"icon"`
	PricePerHour     float64  `json:"price_per_hour"`
	PricePerDay      float64  `json:"price_per_day"`
	Features         []string `json:"features"`
	Availability     string   `json:"availability"`
	MinBookingHours  int      `json:"min_booking_hours"`
	Rating           float64  `json:"rating"`
	TotalBookings    int      `json:"total_bookings"`
}

var services = []Service{
	{
		ID:               "baby-care",
		Name:             "Baby Care",
		ShortDescription: "Professional babysitting services for your little ones",
		Description: "Our Baby Care service provides professional, loving care for infants and toddlers. " +
			"Our certified caregivers are trained in child development, safety protocols, and first aid. " +
			"Whether you need full-time care, part-time assistance, or occasional babysitting, we have " +
			"the perfect caregiver for your family.",
		Icon:         "👶",
		PricePerHour: 500,
		PricePerDay:  3500,
		Features: []string{
			"Certified caregivers",
			"Background verified",
			"First aid trained",
			"Age-appropriate activities",
			"Meal preparation",
			"Daily reports",
		},
		Availability:    "24/7",
		MinBookingHours: 4,
		Rating:          4.9,
		TotalBookings:   2450,
	},
	{
		ID:               "elderly-care",
		Name:             "Elderly Care",
		ShortDescription: "Compassionate care for senior family members",
		Description: "Our Elderly Care service offers compassionate and professional assistance for senior " +
			"family members. Our trained caregivers provide personalized care that promotes dignity, " +
			"independence, and quality of life for elderly individuals.",
		Icon:         "👴",
		PricePerHour: 600,
		PricePerDay:  4200,
		Features: []string{
			"Experienced caregivers",
			"Medical training",
			"Compassionate care",
			"Mobility assistance",
			"Medication management",
			"Companionship",
		},
		Availability:    "24/7",
		MinBookingHours: 4,
		Rating:          4.8,
		TotalBookings:   1890,
	},
	{
		ID:               "sick-care",
		Name:             "Sick People Care",
		ShortDescription: "Specialized care for ill or recovering patients",
		Description: "Our Sick People Care service provides specialized assistance for individuals " +
			"recovering from illness, surgery, or managing chronic conditions. Our caregivers are " +
			"trained to handle various medical situations while providing comfort and support.",
		Icon:         "🏥",
		PricePerHour: 700,
		PricePerDay:  5000,
		Features: []string{
			"Medical background",
			"Health monitoring",
			"Medication support",
			"Recovery assistance",
			"Emergency trained",
			"Comfort care",
		},
		Availability:    "24/7",
		MinBookingHours: 4,
		Rating:          4.9,
		TotalBookings:   1230,
	},
}

// All returns every service in the catalog.
func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ByID looks up a service by its identifier.
func ByID(id string) (*Service, bool) {
	for i := range services {
		if services[i].ID == id {
			return &services[i], true
		}
	}
	return nil, false
}
