package usecase

import (
	"care-booking/internal/data/repository"
	"care-booking/internal/notify"
	"care-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Catalog  CatalogService
	Location LocationService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Catalog:  NewCatalogService(log),
		Location: NewLocationService(log),
		Booking:  NewBookingService(repo, config, notifier, log),
	}
}
