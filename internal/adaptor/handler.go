package adaptor

import (
	"care-booking/internal/notify"
	"care-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Location *LocationHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, notifier notify.Notifier, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Location: NewLocationHandler(service.Location, log),
		Booking:  NewBookingHandler(service.Booking, notifier, log),
	}
}
