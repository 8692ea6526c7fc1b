package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// prometheus metrics
type metrics struct {
	SPQueryCount  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	totalRequests *prometheus.CounterVec
}

// NewMetrics creates the heapath collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		SPQueryCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heapath",
			Name:      "shortest_path_queries_total",
			Help:      "The total number of shortest path queries, by whether the target was reached",
		}, []string{"found"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "heapath",
			Name:      "request_duration_seconds",
			Help:      "The duration of requests",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		totalRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heapath",
			Name:      "requests_total",
			Help:      "The total number of requests",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(m.SPQueryCount, m.httpDuration, m.totalRequests)
	return m
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// PromeHttpMiddleware records request counts and durations labelled by the
// matched chi route pattern, e.g. "/api/graphs/{name}".
func PromeHttpMiddleware(m *metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
				m.httpDuration.WithLabelValues(routePattern(r)).Observe(v)
			}))

			next.ServeHTTP(rw, r)

			timer.ObserveDuration()
			m.totalRequests.WithLabelValues(routePattern(r), strconv.Itoa(rw.statusCode)).Inc()
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}

	return "unmatched"
}
