package calc

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records evaluation outcomes. A nil *Metrics records nothing.
type Metrics struct {
	evaluations *prometheus.CounterVec
	postfixLen  prometheus.Histogram
}

// NewMetrics creates evaluation metrics and registers them with reg, if it is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_evaluations_total",
				Help: "Expressions evaluated, partitioned by result, i.e. ok or the kind of error",
			}, []string{"result"},
		),
		postfixLen: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "calc_postfix_tokens",
				Help:    "Samples the number of tokens in the postfix form of evaluated expressions",
				Buckets: []float64{0, 1, 3, 7, 15, 31, 63, 127, 255},
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.evaluations, m.postfixLen)
	}
	return m
}

// observe records an evaluation. n is the length of the postfix form, or
// negative if conversion failed.
func (m *Metrics) observe(n int, err error) {
	if m == nil {
		return
	}
	if n >= 0 {
		m.postfixLen.Observe(float64(n))
	}
	m.evaluations.WithLabelValues(resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.String()
	}
	return "unknown"
}
