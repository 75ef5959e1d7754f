package request

type BookingLocation struct {
	Division string `json:"division" validate:"required"`
	District string `json:"district" validate:"required"`
	City     string `json:"city" validate:"required"`
	Area     string `json:"area" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

type CreateBookingRequest struct {
	ServiceID    string          `json:"service_id" validate:"required"`
	ServiceName  string          `json:"service_name" validate:"required"`
	Duration     int             `json:"duration" validate:"required,gt=0"`
	DurationUnit string          `json:"duration_unit" validate:"required,oneof=hours days"`
	Location     BookingLocation `json:"location" validate:"required"`
	TotalCost    float64         `json:"total_cost" validate:"required,gt=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Completed Cancelled"`
}
