package wire

import (
	"care-booking/internal/adaptor"
	"care-booking/internal/data/repository"
	"care-booking/pkg/middleware"
	"care-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Customer routes (require auth)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/bookings", bookingHandler.Create)
		r.Get("/api/bookings", bookingHandler.ListOwn)
		r.Delete("/api/bookings/{id}", bookingHandler.CancelOwn)
	})

	// Admin routes (require auth and the admin allow-list)
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(config, log))

		r.Get("/", bookingHandler.ListAll)
		r.Patch("/{id}/status", bookingHandler.UpdateStatus)
	})
}
