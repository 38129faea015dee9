package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rustyeddy/lotsize/risk"
)

// Metrics are registered on a per-server registry and served at /metrics.
type Metrics struct {
	registry *prometheus.Registry

	Requests     *prometheus.CounterVec
	Calculations *prometheus.CounterVec
	Decisions    *prometheus.CounterVec
	RiskScore    prometheus.Histogram
	Saved        prometheus.Counter
}

// NewMetrics registers the lotsize collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lotsize_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		Calculations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lotsize_calculations_total",
			Help: "Calculations by risk level",
		}, []string{"level"}),
		Decisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lotsize_policy_decisions_total",
			Help: "Policy decisions by outcome",
		}, []string{"allowed"}),
		RiskScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lotsize_risk_score",
			Help:    "Distribution of risk scores",
			Buckets: prometheus.LinearBuckets(0, 1, risk.MaxScore+1),
		}),
		Saved: f.NewCounter(prometheus.CounterOpts{
			Name: "lotsize_scenarios_saved_total",
			Help: "Scenarios recorded in the journal",
		}),
	}
}

func (m *Metrics) observe(c risk.Calculation, d risk.Decision) {
	m.Calculations.WithLabelValues(string(c.Assessment.Level)).Inc()
	m.Decisions.WithLabelValues(strconv.FormatBool(d.Allowed)).Inc()
	m.RiskScore.Observe(float64(c.Assessment.Score))
}

// Middleware counts requests by matched route, so path parameters do not
// explode label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
