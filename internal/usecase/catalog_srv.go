package usecase

import (
	"care-booking/internal/data/catalog"
	"care-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListServices() []response.ServiceResponse
	GetService(id string) (*response.ServiceResponse, error)
}

type catalogService struct {
	log *zap.Logger
}

func NewCatalogService(log *zap.Logger) CatalogService {
	return &catalogService{
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices() []response.ServiceResponse {
	return response.ServicesToResponse(catalog.All())
}

func (s *catalogService) GetService(id string) (*response.ServiceResponse, error) {
	svc, ok := catalog.ByID(id)
	if !ok {
		s.log.Warn("Unknown service requested", zap.String("service_id", id))
		return nil, ErrServiceUnknown
	}

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}
