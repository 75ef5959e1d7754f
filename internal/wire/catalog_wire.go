package wire

import (
	"care-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Catalog and coverage lookups are public: the booking form needs them
// before the visitor has an account.
func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	locationHandler *adaptor.LocationHandler,
) {
	r.Get("/api/services", catalogHandler.List)
	r.Get("/api/services/{id}", catalogHandler.Get)

	r.Route("/api/locations", func(r chi.Router) {
		r.Get("/divisions", locationHandler.Divisions)
		r.Get("/districts", locationHandler.Districts)
		r.Get("/cities", locationHandler.Cities)
		r.Get("/areas", locationHandler.Areas)
	})
}
