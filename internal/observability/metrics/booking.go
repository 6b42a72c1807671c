package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "barbershop"

// BookingMetrics counts pricing, validation and lifecycle outcomes.
// A nil *BookingMetrics is valid and records nothing.
type BookingMetrics struct {
	quotesTotal         *prometheus.CounterVec
	quotedPrice         *prometheus.HistogramVec
	validationsTotal    *prometheus.CounterVec
	transitionsTotal    *prometheus.CounterVec
	appointmentsCreated prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		quotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pricing",
			Name:      "quotes_total",
			Help:      "Total price quotes by applied strategy",
		}, []string{"strategy"}),
		quotedPrice: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pricing",
			Name:      "final_price",
			Help:      "Final quoted price in currency units",
			Buckets:   []float64{10000, 20000, 30000, 50000, 80000, 120000, 200000},
		}, []string{"strategy"}),
		validationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "validations_total",
			Help:      "Booking validations by result",
		}, []string{"result"}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointment",
			Name:      "transitions_total",
			Help:      "Lifecycle actions by action and outcome",
		}, []string{"action", "outcome"}),
		appointmentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointment",
			Name:      "created_total",
			Help:      "Total appointments created",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.quotesTotal, m.quotedPrice, m.validationsTotal, m.transitionsTotal, m.appointmentsCreated)
	return m
}

func (m *BookingMetrics) ObserveQuote(strategy string, finalPrice int) {
	if m == nil {
		return
	}
	m.quotesTotal.WithLabelValues(strategy).Inc()
	m.quotedPrice.WithLabelValues(strategy).Observe(float64(finalPrice))
}

// ObserveValidation records a booking validation. An empty reason means it passed.
func (m *BookingMetrics) ObserveValidation(reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "ok"
	}
	m.validationsTotal.WithLabelValues(reason).Inc()
}

func (m *BookingMetrics) ObserveTransition(action string, ok bool) {
	if m == nil {
		return
	}
	outcome := "applied"
	if !ok {
		outcome = "rejected"
	}
	m.transitionsTotal.WithLabelValues(action, outcome).Inc()
}

func (m *BookingMetrics) ObserveAppointmentCreated() {
	if m == nil {
		return
	}
	m.appointmentsCreated.Inc()
}
