package detect

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TransitionsDetectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transitions_detected_total",
			Help: "Count of detected transitions by confidence tier and contract agency.",
		},
		[]string{"confidence", "agency"},
	)

	VendorResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_resolutions_total",
			Help: "Count of vendor resolution attempts by match method.",
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(TransitionsDetectedTotal, VendorResolutionsTotal)
}
