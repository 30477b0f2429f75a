// Package restapi exposes the trip aggregation service over HTTP. It is a
// thin display collaborator: all trip logic lives in internal/trips, and
// the handlers only translate between HTTP and the domain types.
package restapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stationator.nl/internal/app"
)

// RestAPI wraps the application container with HTTP handlers.
type RestAPI struct {
	*app.Application

	rateLimiter *RateLimitMiddleware
}

// New creates the REST API for an application.
func New(application *app.Application) *RestAPI {
	return &RestAPI{Application: application}
}

// Routes builds the full handler chain and route table.
func (api *RestAPI) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(RequestIDMiddleware)
	router.Use(NewRequestLoggingMiddleware(api.Logger))
	router.Use(MetricsHandler(api.Metrics))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	if api.Config.RateLimit >= 0 {
		api.rateLimiter = NewRateLimitMiddleware(api.Config.RateLimit, time.Second, api.Clock)
		router.Use(api.rateLimiter.Handler())
	}

	router.Get("/healthz", api.healthHandler)
	if api.Metrics != nil {
		router.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(api.Metrics.Registry, promhttp.HandlerOpts{}))
	}
	router.Get("/debug", api.debugHandler)

	router.Route("/api", func(r chi.Router) {
		// Trip schedules change constantly; never let intermediaries cache them.
		r.With(CacheControlMiddlewareFunc(0)).Get("/trips/{direction}", api.tripsHandler)
		r.With(CacheControlMiddlewareFunc(0)).Get("/trips/{direction}/{hour}", api.tripsHandler)

		// The directory is static for the process lifetime.
		r.With(CacheControlMiddlewareFunc(3600)).Get("/stations", api.stationsHandler)

		r.Get("/current-time", api.currentTimeHandler)
		r.Get("/preferences", api.getPreferencesHandler)
		r.Put("/preferences", api.putPreferencesHandler)
	})

	return router
}

// Shutdown releases background resources held by middleware.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
