package adaptor

import (
	"net/http"

	"care-booking/internal/usecase"
	"care-booking/pkg/utils"

	"go.uber.org/zap"
)

type LocationHandler struct {
	service usecase.LocationService
	log     *zap.Logger
}

func NewLocationHandler(service usecase.LocationService, log *zap.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		log:     log.With(zap.String("handler", "location")),
	}
}

// Divisions handles GET /api/locations/divisions
func (h *LocationHandler) Divisions(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Divisions retrieved", h.service.Divisions())
}

// Districts handles GET /api/locations/districts?division=...
func (h *LocationHandler) Districts(w http.ResponseWriter, r *http.Request) {
	division := r.URL.Query().Get("division")
	if division == "" {
		utils.ResponseBadRequest(w, "division is required", nil)
		return
	}

	utils.ResponseSuccess(w, "Districts retrieved", h.service.Districts(division))
}

// Cities handles GET /api/locations/cities?division=...&district=...
func (h *LocationHandler) Cities(w http.ResponseWriter, r *http.Request) {
	division := r.URL.Query().Get("division")
	district := r.URL.Query().Get("district")
	if division == "" || district == "" {
		utils.ResponseBadRequest(w, "division and district are required", nil)
		return
	}

	utils.ResponseSuccess(w, "Cities retrieved", h.service.Cities(division, district))
}

// Areas handles GET /api/locations/areas?division=...&district=...&city=...
func (h *LocationHandler) Areas(w http.ResponseWriter, r *http.Request) {
	division := r.URL.Query().Get("division")
	district := r.URL.Query().Get("district")
	city := r.URL.Query().Get("city")
	if division == "" || district == "" || city == "" {
		utils.ResponseBadRequest(w, "division, district and city are required", nil)
		return
	}

	utils.ResponseSuccess(w, "Areas retrieved", h.service.Areas(division, district, city))
}
