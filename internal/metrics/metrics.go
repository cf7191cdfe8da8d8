package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reservation outcome labels. Invalid and conflict look identical to the
// caller; the split exists only here.
const (
	ResultCommitted = "committed"
	ResultConflict  = "conflict"
	ResultInvalid   = "invalid"
	ResultNotFound  = "not_found"
	ResultError     = "error"
)

var (
	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slotbooker_reservations_total",
			Help: "Reservation attempts by terminal result",
		},
		[]string{"result"},
	)

	SlotsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slotbooker_slots_created_total",
			Help: "Slots added to the catalog",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slotbooker_request_duration_seconds",
			Help:    "HTTP request handling time in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	OutboxPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slotbooker_outbox_events_published_total",
			Help: "Outbox events relayed to the broker",
		},
	)
)
