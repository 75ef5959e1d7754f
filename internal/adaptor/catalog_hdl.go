package adaptor

import (
	"errors"
	"net/http"

	"care-booking/internal/usecase"
	"care-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// List handles GET /api/services
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Services retrieved", h.service.ListServices())
}

// Get handles GET /api/services/{id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.service.GetService(id)
	if err != nil {
		if errors.Is(err, usecase.ErrServiceUnknown) {
			utils.ResponseNotFound(w, "Service not found")
			return
		}
		h.log.Error("Failed to get service", zap.Error(err), zap.String("service_id", id))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Service retrieved", resp)
}
