package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the complete HTTP handler: request ids, panic recovery,
// any extra middlewares (request logging in the server binary), prometheus
// instrumentation, /metrics on reg and the /api routes.
func NewRouter(svc GraphService, reg *prometheus.Registry, mws ...func(http.Handler) http.Handler) *chi.Mux {
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mws...)
	r.Use(PromeHttpMiddleware(m)) // prometheus http middleware

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	GraphRouter(r, svc, m)

	return r
}
