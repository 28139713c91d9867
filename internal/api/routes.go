package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feriae/liturgical-calendar/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/calendar/{year}            bulk all-dates view
//	GET    /api/v1/calendar/{year}/easter     resolved Easter (both eras)
//	GET    /api/v1/easter/{year}              direct Gregorian computus
//	GET    /api/v1/leap-year/{year}           leap predicate, optional ?calendar=
//	GET    /api/v1/admin/archive              archived years (admin key)
//	DELETE /api/v1/admin/archive/{year}       evict archived year (admin key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendar/{year}", handlers.GetCalendarYear)
		r.Get("/calendar/{year}/easter", handlers.GetEaster)
		r.Get("/easter/{year}", handlers.ComputeGregorianEaster)
		r.Get("/leap-year/{year}", handlers.GetLeapYear)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminOnlyMiddleware(cfg, log))
			r.Get("/archive", handlers.ListArchivedYears)
			r.Delete("/archive/{year}", handlers.DeleteArchivedYear)
		})
	})

	return r
}
