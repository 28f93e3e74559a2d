package api

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK             = "ok"
	outcomeTransportError = "transport_error"
	outcomeRequestFailed  = "request_failed"
	outcomeDecodeFailed   = "decode_failed"
)

// Metrics holds the prometheus collectors updated by every fetch.
type Metrics struct {
	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec
	Decoded   prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restcountries_requests_total",
			Help: "Requests sent to the REST Countries service by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		Durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restcountries_request_duration_seconds",
			Help:    "Round trip time of REST Countries requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		Decoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restcountries_countries_decoded_total",
			Help: "Country records decoded from successful responses.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Requests, m.Durations, m.Decoded)
	}

	return m
}

func (m *Metrics) observe(path string, outcome string, elapsed time.Duration, decoded int) {
	if m == nil {
		return
	}

	endpoint := endpointLabel(path)
	m.Requests.WithLabelValues(endpoint, outcome).Inc()
	m.Durations.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	if decoded > 0 {
		m.Decoded.Add(float64(decoded))
	}
}

// endpointLabel reduces a relative path to its first segment, e.g. "name/nepal?fullText=true" -> "name".
func endpointLabel(path string) string {
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		return path[:i]
	}
	return path
}
