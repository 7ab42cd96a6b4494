package metrics

import (
	"net/http"
	"strconv"
	"time"

	"lims_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the Prometheus series exported by the service.
type Metrics struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	storeRefreshes   *prometheus.CounterVec
	storeDuration    *prometheus.HistogramVec
	storeSize        *prometheus.GaugeVec
	invoicesIssued   prometheus.Counter
	invoicedAmount   prometheus.Counter
	invoicesRejected *prometheus.CounterVec
}

var _ interfaces.IInvoiceMetrics = (*Metrics)(nil)

// New builds a private registry with every series registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lims_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lims_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		storeRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lims_store_refresh_total",
			Help: "Entity cache refreshes by store and outcome.",
		}, []string{"store", "outcome"}),
		storeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lims_store_refresh_duration_seconds",
			Help:    "Time spent reloading an entity cache.",
			Buckets: prometheus.DefBuckets,
		}, []string{"store"}),
		storeSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lims_store_items",
			Help: "Items held by an entity cache after its last successful refresh.",
		}, []string{"store"}),
		invoicesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lims_invoices_issued_total",
			Help: "Invoices issued.",
		}),
		invoicedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lims_invoiced_amount_total",
			Help: "Sum of issued invoice totals.",
		}),
		invoicesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lims_invoice_validation_failures_total",
			Help: "Invoice requests rejected by validation, by reason.",
		}, []string{"reason"}),
	}
	registry.MustRegister(
		m.requestsTotal, m.requestDuration,
		m.storeRefreshes, m.storeDuration, m.storeSize,
		m.invoicesIssued, m.invoicedAmount, m.invoicesRejected,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// GinMiddleware records a counter and a latency sample per matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// StoreRefreshed is called by the entity stores after every reload attempt.
func (m *Metrics) StoreRefreshed(store string, d time.Duration, items int, err error) {
	if m == nil {
		return
	}
	m.storeDuration.WithLabelValues(store).Observe(d.Seconds())
	if err != nil {
		m.storeRefreshes.WithLabelValues(store, "error").Inc()
		return
	}
	m.storeRefreshes.WithLabelValues(store, "ok").Inc()
	m.storeSize.WithLabelValues(store).Set(float64(items))
}

func (m *Metrics) InvoiceIssued(total float64) {
	if m == nil {
		return
	}
	m.invoicesIssued.Inc()
	if total > 0 {
		m.invoicedAmount.Add(total)
	}
}

func (m *Metrics) InvoiceRejected(reason string) {
	if m == nil {
		return
	}
	m.invoicesRejected.WithLabelValues(reason).Inc()
}
