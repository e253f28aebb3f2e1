package memorableid

import "github.com/prometheus/client_golang/prometheus"

// generation outcomes
const (
	outcomeSuccess        = "success"
	outcomeExhausted      = "exhausted"
	outcomeInvalidConfig  = "invalid_config"
	outcomeValidatorError = "validator_error"
)

// Metrics collects generation counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	generated  *prometheus.CounterVec
	rejections *prometheus.CounterVec
	attempts   prometheus.Histogram
}

// NewMetrics registers the generator collectors with registerer, reusing
// collectors that are already registered. Nil means the default registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "memid_generated_total",
		Help: "Generation calls by outcome.",
	}, []string{"outcome"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "memid_rejections_total",
		Help: "Rejected candidates by reason.",
	}, []string{"reason"})
	attempts := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "memid_attempts",
		Help:    "Attempts needed by successful generation calls.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	})

	return &Metrics{
		generated:  register(registerer, generated),
		rejections: register(registerer, rejections),
		attempts:   register(registerer, attempts),
	}
}

func (m *Metrics) incOutcome(outcome string) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(outcome).Inc()
}

func (m *Metrics) incRejection(reason string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) observeSuccess(attempts int) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(outcomeSuccess).Inc()
	m.attempts.Observe(float64(attempts))
}

func register[C prometheus.Collector](registerer prometheus.Registerer, c C) C {
	if err := registerer.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}
