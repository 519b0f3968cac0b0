package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the domain counters. A nil *Metrics records nothing.
type Metrics struct {
	ReservationsCreated  prometheus.Counter
	AvailabilityRejected *prometheus.CounterVec
	ReservationsExpired  prometheus.Counter
	Notifications        *prometheus.CounterVec
	Quotes               prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ReservationsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "reservations_created_total",
			Help: "Total number of reservations persisted.",
		}),
		AvailabilityRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_rejections_total",
			Help: "Total number of availability checks rejected, by reason.",
		}, []string{"reason"}),
		ReservationsExpired: f.NewCounter(prometheus.CounterOpts{
			Name: "reservations_expired_total",
			Help: "Total number of reservations purged by the expiry sweep.",
		}),
		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of notification events, by result.",
		}, []string{"result"}),
		Quotes: f.NewCounter(prometheus.CounterOpts{
			Name: "quotes_total",
			Help: "Total number of price quotes computed.",
		}),
	}
}

func (m *Metrics) created() {
	if m != nil {
		m.ReservationsCreated.Inc()
	}
}

func (m *Metrics) rejected(kind Kind) {
	if m != nil {
		m.AvailabilityRejected.WithLabelValues(kind.String()).Inc()
	}
}

func (m *Metrics) expired(n int64) {
	if m != nil && n > 0 {
		m.ReservationsExpired.Add(float64(n))
	}
}

// Notified counts one notification outcome ("published", "dropped", "delivered", "failed").
func (m *Metrics) Notified(result string) {
	if m != nil {
		m.Notifications.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) quoted() {
	if m != nil {
		m.Quotes.Inc()
	}
}
