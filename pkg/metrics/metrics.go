package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	AppointmentsBooked    prometheus.Counter
	AppointmentsCancelled prometheus.Counter
	AppointmentsCompleted prometheus.Counter
	AppointmentsExpired   prometheus.Counter
	MalformedSchedules    prometheus.Counter
	SweepDuration         prometheus.Histogram
	ErrorsCount           *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		AppointmentsBooked: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "The total number of appointments booked",
		}),
		AppointmentsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_cancelled_total",
			Help:      "The total number of appointments cancelled",
		}),
		AppointmentsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_completed_total",
			Help:      "The total number of appointments marked completed",
		}),
		AppointmentsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_expired_total",
			Help:      "The total number of appointments auto-completed by the expiry sweep",
		}),
		MalformedSchedules: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_schedules_total",
			Help:      "The total number of appointments with unparsable slot date/time",
		}),
		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expiry_sweep_duration_seconds",
			Help:      "Time taken by the expiry reconciliation sweep",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
