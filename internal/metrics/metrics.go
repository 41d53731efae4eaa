// internal/metrics/metrics.go
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tamzrod/modbus-reader/internal/reading"
)

// Collector counts descriptor reads. It implements reading.Observer.
type Collector struct {
	reg *prometheus.Registry

	reads    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration prometheus.Histogram
}

// New creates a Collector registered on its own registry.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "modbus_reader_reads_total",
			Help: "Descriptor reads attempted, by data type.",
		}, []string{"type"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "modbus_reader_read_errors_total",
			Help: "Descriptor reads that produced an error row, by failure kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "modbus_reader_read_duration_seconds",
			Help:    "Transport round trip per descriptor.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	c.reg.MustRegister(c.reads, c.errors, c.duration)
	return c
}

// ObserveRead records one descriptor read.
func (c *Collector) ObserveRead(d reading.Descriptor, took time.Duration, err error) {
	c.reads.WithLabelValues(d.Type.String()).Inc()
	if took > 0 {
		c.duration.Observe(took.Seconds())
	}
	if err != nil {
		c.errors.WithLabelValues(errorKind(err)).Inc()
	}
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

func errorKind(err error) string {
	var te *reading.TransportError
	if errors.As(err, &te) {
		return te.Kind.String()
	}
	if errors.Is(err, reading.ErrInvalidDescriptor) {
		return "descriptor"
	}
	return "unknown"
}
