package usecase

import (
	"context"
	"strings"
	"time"

	"care-booking/internal/data/catalog"
	"care-booking/internal/data/entity"
	"care-booking/internal/data/location"
	"care-booking/internal/data/repository"
	"care-booking/internal/dto/request"
	"care-booking/internal/notify"
	"care-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Customer operations
	CreateBooking(ctx context.Context, actor Actor, req *request.CreateBookingRequest) (*entity.Booking, error)
	ListOwnBookings(ctx context.Context, actor Actor) ([]*entity.Booking, error)
	CancelOwnBooking(ctx context.Context, actor Actor, bookingID string) (*entity.Booking, error)

	// Admin operations (an owner may only request cancellation of their own pending booking)
	ListAllBookings(ctx context.Context, actor Actor) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, actor Actor, bookingID string, target entity.BookingStatus) (*entity.Booking, error)

	// IsAdministrator checks the caller against the configured allow-list.
	IsAdministrator(email string) bool
}

type bookingService struct {
	repo     *repository.Repository
	admins   map[string]struct{}
	notifier notify.Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, notifier notify.Notifier, log *zap.Logger) BookingService {
	admins := make(map[string]struct{}, len(config.Admin.Emails))
	for _, email := range config.Admin.Emails {
		admins[strings.ToLower(email)] = struct{}{}
	}

	return &bookingService{
		repo:     repo,
		admins:   admins,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) IsAdministrator(email string) bool {
	_, ok := s.admins[strings.ToLower(email)]
	return ok
}

func (s *bookingService) CreateBooking(ctx context.Context, actor Actor, req *request.CreateBookingRequest) (*entity.Booking, error) {
	// Validate request shape
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	// Validate service against the catalog
	svc, ok := catalog.ByID(req.ServiceID)
	if !ok {
		return nil, NewValidationError("service_id", "unknown service")
	}

	unit := entity.DurationUnit(req.DurationUnit)

	// The catalog rate is authoritative: the submitted total must match
	// the computed cost exactly.
	expectedCost := svc.PricePerHour * float64(req.Duration)
	if unit == entity.DurationUnitDays {
		expectedCost = svc.PricePerHour * float64(req.Duration) * entity.HoursPerDay
	}

	if req.TotalCost != expectedCost {
		s.log.Warn("Create booking cost mismatch",
			zap.Float64("submitted", req.TotalCost),
			zap.Float64("expected", expectedCost),
			zap.String("service_id", req.ServiceID),
		)
		return nil, NewValidationError("total_cost", "does not match the service rate")
	}

	// Validate the service location against the coverage dataset
	loc := entity.Location{
		Division: req.Location.Division,
		District: req.Location.District,
		City:     req.Location.City,
		Area:     req.Location.Area,
		Address:  req.Location.Address,
	}
	if !loc.IsComplete() {
		return nil, NewValidationError("location", "all location fields are required")
	}
	if !location.ServesArea(loc.Division, loc.District, loc.City, loc.Area) {
		return nil, NewValidationError("location", "area is not covered")
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		Duration:     req.Duration,
		DurationUnit: unit,
		Location:     loc,
		TotalCost:    expectedCost,
		Status:       entity.BookingStatusPending,
		UserID:       actor.ID,
		UserEmail:    actor.Email,
		UserName:     actor.Name,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_email", actor.Email),
			zap.String("service_id", req.ServiceID),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("service_id", booking.ServiceID),
		zap.String("user_email", actor.Email),
		zap.Float64("total_cost", booking.TotalCost),
	)

	return booking, nil
}

func (s *bookingService) ListOwnBookings(ctx context.Context, actor Actor) ([]*entity.Booking, error) {
	bookings, err := s.repo.Booking.FindByUserEmail(ctx, actor.Email)
	if err != nil {
		s.log.Error("Failed to list own bookings",
			zap.Error(err),
			zap.String("user_email", actor.Email),
		)
		return nil, err
	}

	return bookings, nil
}

func (s *bookingService) ListAllBookings(ctx context.Context, actor Actor) ([]*entity.Booking, error) {
	if !s.IsAdministrator(actor.Email) {
		s.log.Warn("Non-admin attempted to list all bookings",
			zap.String("user_email", actor.Email))
		return nil, ErrUnauthorized
	}

	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all bookings", zap.Error(err))
		return nil, err
	}

	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, actor Actor, bookingID string, target entity.BookingStatus) (*entity.Booking, error) {
	if !target.IsValid() {
		return nil, NewValidationError("status", "unknown status")
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, NewValidationError("booking_id", "must be a valid UUID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	isAdmin := s.IsAdministrator(actor.Email)

	// Another customer's booking is invisible, not just forbidden.
	if !isAdmin && !booking.IsOwnedBy(actor.Email) {
		return nil, ErrNotFound
	}

	if !isAdmin {
		// A terminal booking cannot move at all; report the conflict
		// before any permission check.
		if booking.Status.IsTerminal() {
			return nil, ErrInvalidTransition
		}
		// Customers may only request cancellation, and only while the
		// booking is still pending. A confirmed booking needs an
		// administrator to cancel.
		if target != entity.BookingStatusCancelled {
			return nil, ErrUnauthorized
		}
		if booking.Status != entity.BookingStatusPending {
			return nil, ErrUnauthorized
		}
	} else if !booking.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	return s.applyTransition(ctx, booking, target)
}

func (s *bookingService) CancelOwnBooking(ctx context.Context, actor Actor, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, NewValidationError("booking_id", "must be a valid UUID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil || !booking.IsOwnedBy(actor.Email) {
		return nil, ErrNotFound
	}

	// Self-cancellation is only allowed while pending.
	if booking.Status != entity.BookingStatusPending {
		return nil, ErrInvalidTransition
	}

	return s.applyTransition(ctx, booking, entity.BookingStatusCancelled)
}

// applyTransition persists the status change with a conditional update so
// concurrent transitions cannot both win, then dispatches the notification
// email. The email is best-effort and never affects the result.
func (s *bookingService) applyTransition(ctx context.Context, booking *entity.Booking, target entity.BookingStatus) (*entity.Booking, error) {
	now := time.Now()

	claimed, err := s.repo.Booking.UpdateStatusFrom(ctx, booking.ID, booking.Status, target, now)
	if err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("target", string(target)),
		)
		return nil, err
	}

	if !claimed {
		// Lost a race: the status moved under us. Report the conflict
		// against the now-current state.
		current, findErr := s.repo.Booking.FindByID(ctx, booking.ID)
		if findErr != nil {
			return nil, findErr
		}
		if current == nil {
			return nil, ErrNotFound
		}

		s.log.Warn("Booking status changed concurrently",
			zap.String("booking_id", booking.ID.String()),
			zap.String("expected", string(booking.Status)),
			zap.String("current", string(current.Status)),
		)
		return nil, ErrInvalidTransition
	}

	booking.Status = target
	booking.UpdatedAt = now

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(target)),
		zap.String("user_email", booking.UserEmail),
	)

	notify.DispatchStatusUpdate(s.notifier, s.log, booking, target)

	return booking, nil
}
