package usecase

import (
	"care-booking/internal/data/location"

	"go.uber.org/zap"
)

// LocationService resolves the coverage hierarchy one level at a time.
// Unknown parents yield empty slices, never errors, so the booking form
// can drive cascading dropdowns without special cases.
type LocationService interface {
	Divisions() []string
	Districts(division string) []string
	Cities(division, district string) []string
	Areas(division, district, city string) []string
}

type locationService struct {
	log *zap.Logger
}

func NewLocationService(log *zap.Logger) LocationService {
	return &locationService{
		log: log.With(zap.String("service", "location")),
	}
}

func (s *locationService) Divisions() []string {
	return location.Divisions()
}

func (s *locationService) Districts(division string) []string {
	return location.Districts(division)
}

func (s *locationService) Cities(division, district string) []string {
	return location.Cities(division, district)
}

func (s *locationService) Areas(division, district, city string) []string {
	return location.Areas(division, district, city)
}
