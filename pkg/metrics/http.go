package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the detection HTTP handlers
	DetectLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "detect_request_latency_seconds",
		Help:    "Latency of transition detection handlers",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of detection requests served
	DetectRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "detect_requests_total",
		Help: "Total number of detection requests",
	})

	// Total number of vendor resolution requests served
	ResolveRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vendor_resolve_requests_total",
		Help: "Total number of vendor resolve requests",
	})
)

func Init() {
	prometheus.MustRegister(
		DetectLatency,
		DetectRequests,
		ResolveRequests,
	)
}
