// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	Registry = prometheus.NewRegistry()

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_total",
			Help: "Number of requests",
		},
		[]string{"method", "handler", "status"},
	)

	ResponseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_response_time",
			Help:    "The API response time in seconds",
			Buckets: prometheus.LinearBuckets(0.05, 0.05, 10),
		},
		[]string{"method", "handler", "status"},
	)

	IssueMoves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "issue_moves_total",
			Help: "Board drag and drop moves by kind",
		},
		[]string{"kind"},
	)

	SprintTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sprint_transitions_total",
			Help: "Sprint status transition attempts by target status and result",
		},
		[]string{"to", "result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		RequestTotal,
		ResponseTime,
		IssueMoves,
		SprintTransitions,
	)
}

func RegisterRequest(start time.Time, method, handler string, status int) {
	code := strconv.Itoa(status)
	RequestTotal.WithLabelValues(method, handler, code).Inc()
	ResponseTime.WithLabelValues(method, handler, code).Observe(time.Since(start).Seconds())
}

// RegisterMove counts a board move. kind is "reorder", "transfer" or "noop".
func RegisterMove(kind string) {
	IssueMoves.WithLabelValues(kind).Inc()
}

func RegisterTransition(to string, allowed bool) {
	result := "rejected"
	if allowed {
		result = "allowed"
	}
	SprintTransitions.WithLabelValues(to, result).Inc()
}
