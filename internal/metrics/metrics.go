package metrics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "local_events"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	created      prometheus.Counter
	lookups      *prometheus.CounterVec
	deduplicated prometheus.Counter
	stored       prometheus.Gauge
	requests     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.created = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Events added to the store",
	})
	m.lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Lookups by id, split by whether the event was found",
	}, []string{"result"})
	m.deduplicated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_deduplicated_total",
		Help:      "Repeated submissions answered with an existing event",
	})
	m.stored = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stored",
		Help:      "Events currently held in memory",
	})
	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	m.registry.MustRegister(
		m.created,
		m.lookups,
		m.deduplicated,
		m.stored,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) EventCreated(total int) {
	m.created.Inc()
	m.stored.Set(float64(total))
}

func (m *Metrics) SetStored(total int) {
	m.stored.Set(float64(total))
}

func (m *Metrics) Lookup(found bool) {
	if found {
		m.lookups.WithLabelValues("found").Inc()
		return
	}
	m.lookups.WithLabelValues("absent").Inc()
}

func (m *Metrics) SubmissionDeduplicated() {
	m.deduplicated.Inc()
}

// Middleware counts requests per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
