package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"care-booking/internal/data/entity"
	"care-booking/internal/dto/request"
	"care-booking/internal/dto/response"
	"care-booking/internal/notify"
	"care-booking/internal/usecase"
	"care-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service  usecase.BookingService
	notifier notify.Notifier
	log      *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, notifier notify.Notifier, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:  service,
		notifier: notifier,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), actor, &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	// The invoice email is best-effort and must not delay the response.
	notify.DispatchInvoice(h.notifier, h.log, booking)

	utils.ResponseCreated(w, "Booking created", response.BookingToResponse(booking))
}

// ListOwn handles GET /api/bookings
func (h *BookingHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	bookings, err := h.service.ListOwnBookings(r.Context(), actor)
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response.BookingsToResponse(bookings))
}

// CancelOwn handles DELETE /api/bookings/{id}
func (h *BookingHandler) CancelOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.CancelOwnBooking(r.Context(), actor, bookingID)
	if err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", response.BookingToResponse(booking))
}

// ListAll handles GET /api/admin/bookings
func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	bookings, err := h.service.ListAllBookings(r.Context(), actor)
	if err != nil {
		h.handleServiceError(w, err, "list all bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response.BookingsToResponse(bookings))
}

// UpdateStatus handles PATCH /api/admin/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	bookingID := chi.URLParam(r, "id")

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	target, err := entity.ParseBookingStatus(req.Status)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), actor, bookingID, target)
	if err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", response.BookingToResponse(booking))
}

func actorFromContext(r *http.Request) (usecase.Actor, bool) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return usecase.Actor{}, false
	}
	email, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		return usecase.Actor{}, false
	}
	name, _ := utils.GetUserNameFromContext(ctx)

	return usecase.Actor{
		ID:    userID.String(),
		Email: email,
		Name:  name,
	}, true
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Booking not found")

	case errors.Is(err, usecase.ErrUnauthorized):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Forbidden")

	case errors.Is(err, usecase.ErrInvalidTransition):
		h.log.Warn(operation+" failed - invalid transition", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
