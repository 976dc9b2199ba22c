// Package metrics exposes the Prometheus counters and histograms scraped at
// /metrics. Definitions and label sets mirror the ledger_http_* series used
// elsewhere in the pack, extended with a transfer-flow outcome counter.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_http_requests_total",
		Help: "Total HTTP requests processed, labeled by method, path, and status",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wallet_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	TransferOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_transfer_outcomes_total",
		Help: "Transfer engine outcomes, labeled by flow and result",
	}, []string{"flow", "result"})

	TransferRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_transfer_retries_total",
		Help: "Number of internal TransientConflict retries attempted by the transfer engine",
	}, []string{"flow"})
)

// Middleware records HTTP request counts and latency for every route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(c.Request.Method, c.FullPath()))
		c.Next()
		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, c.FullPath(), statusLabel(c.Writer.Status())).Inc()
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
