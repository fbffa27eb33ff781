// Package metrics exposes Prometheus instrumentation for the daemon.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once     sync.Once
	registry *Registry
)

// Registry holds all daemon metrics.
type Registry struct {
	// Configuration metrics
	ConfigLoads        *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec

	// Area classification metrics
	AreaMatchQueries *prometheus.CounterVec
	AreaMatchHits    *prometheus.CounterVec

	// System metrics
	StartTime prometheus.Gauge
	Uptime    prometheus.GaugeFunc
}

// Get returns the global metrics registry, creating it if necessary.
func Get() *Registry {
	once.Do(func() {
		registry = newRegistry()
	})
	return registry
}

func newRegistry() *Registry {
	r := &Registry{}
	started := time.Now()

	r.ConfigLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "config_loads_total",
		Help: "Configuration load attempts by result",
	}, []string{"result"})

	r.ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "config_validation_failures_total",
		Help: "Configuration validation failures by error kind",
	}, []string{"kind"})

	r.AreaMatchQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "area_match_queries_total",
		Help: "Area classification queries by area and kind",
	}, []string{"area", "kind"})

	r.AreaMatchHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "area_match_hits_total",
		Help: "Area classification queries that matched, by area and kind",
	}, []string{"area", "kind"})

	r.StartTime = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "process_start_time_unix",
		Help: "Unix timestamp at which the daemon started",
	})
	r.StartTime.Set(float64(started.Unix()))

	r.Uptime = promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "process_uptime_seconds",
		Help: "Seconds since the daemon started",
	}, func() float64 {
		return time.Since(started).Seconds()
	})

	return r
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	Get() // make sure collectors are registered
	return promhttp.Handler()
}
