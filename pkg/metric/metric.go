// Package metric exports the checker's regression samples through
// Prometheus.
package metric

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the prometheus collectors used by stream checking.
type Metrics struct {
	MSNRegression *prometheus.GaugeVec
}

// New registers the collectors against registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		MSNRegression: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hls_msn_regression",
			Help: "Media sequence regression size of the most recent playlist update; 0 when healthy.",
		}, []string{"stream"}),
	}

	registry.MustRegister(m.MSNRegression)

	return m
}

// MSNRegressionFor returns the regression sink for one stream,
// suitable for check.New.
func (m *Metrics) MSNRegressionFor(stream string) *Gauge {
	return NewGauge(m.MSNRegression.WithLabelValues(stream))
}

// Gauge adapts a prometheus gauge to the checker's Metric interface.
type Gauge struct {
	gauge prometheus.Gauge
}

func NewGauge(g prometheus.Gauge) *Gauge {
	return &Gauge{gauge: g}
}

// Put records one regression sample.
func (g *Gauge) Put(v uint64) {
	g.gauge.Set(float64(v))
}
