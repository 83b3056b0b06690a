package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGaugePut(t *testing.T) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_regression"})

	sink := NewGauge(g)
	sink.Put(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(g))

	sink.Put(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(g))
}

func TestMetricsPerStream(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.MSNRegressionFor("audio").Put(2)
	m.MSNRegressionFor("video").Put(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MSNRegression.WithLabelValues("audio")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.MSNRegression.WithLabelValues("video")))
}
