package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	eventsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "events_created_total",
			Help: "Total events created",
		},
	)

	bookingsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_confirmed_total",
			Help: "Total bookings confirmed",
		},
	)

	bookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Total bookings cancelled",
		},
	)
)

func ObserveRequest(method, path, status string, seconds float64) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}

func IncEventCreated() {
	eventsCreated.Inc()
}

func IncBookingConfirmed() {
	bookingsConfirmed.Inc()
}

func IncBookingCancelled() {
	bookingsCancelled.Inc()
}
