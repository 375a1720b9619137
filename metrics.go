package clouch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reasons a response is passed through without rewriting.
const (
	ReasonDevice   = "device"
	ReasonMethod   = "method"
	ReasonStatus   = "status"
	ReasonNotHTML  = "not_html"
	ReasonEncoded  = "encoded"
	ReasonTooLarge = "too_large"
	ReasonNoMatch  = "no_match"
	ReasonError    = "error"
)

// Metrics holds the middleware counters. A nil *Metrics records nothing.
type Metrics struct {
	classifications   *prometheus.CounterVec
	pagesRewritten    prometheus.Counter
	elementsRewritten prometheus.Counter
	replacements      prometheus.Counter
	passthrough       *prometheus.CounterVec
}

// NewMetrics registers the middleware counters with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		classifications: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clouch_classifications_total",
				Help: "Requests classified, by device type",
			},
			[]string{"device_type"},
		),
		pagesRewritten: f.NewCounter(prometheus.CounterOpts{
			Name: "clouch_pages_rewritten_total",
			Help: "HTML responses rewritten for touch devices",
		}),
		elementsRewritten: f.NewCounter(prometheus.CounterOpts{
			Name: "clouch_elements_rewritten_total",
			Help: "Elements whose markup was rewritten",
		}),
		replacements: f.NewCounter(prometheus.CounterOpts{
			Name: "clouch_replacements_total",
			Help: "Occurrences replaced across all rewritten pages",
		}),
		passthrough: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clouch_passthrough_total",
				Help: "Responses served without rewriting, by reason",
			},
			[]string{"reason"},
		),
	}
}

func (m *Metrics) classified(deviceType string) {
	if m == nil {
		return
	}
	if deviceType == "" {
		deviceType = "unknown"
	}
	m.classifications.WithLabelValues(deviceType).Inc()
}

func (m *Metrics) rewritten(elements, replacements int) {
	if m == nil {
		return
	}
	m.pagesRewritten.Inc()
	m.elementsRewritten.Add(float64(elements))
	m.replacements.Add(float64(replacements))
}

func (m *Metrics) passedThrough(reason string) {
	if m == nil {
		return
	}
	m.passthrough.WithLabelValues(reason).Inc()
}
