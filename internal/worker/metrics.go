package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "skyshop",
		Subsystem: "reconciler",
		Name:      "sweep_duration_seconds",
		Help:      "Histogram of full sweep durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ordersChecked = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skyshop",
		Subsystem: "reconciler",
		Name:      "orders_checked_total",
		Help:      "Total number of order status checks.",
	}, []string{"provider"})

	ordersUpdated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skyshop",
		Subsystem: "reconciler",
		Name:      "orders_updated_total",
		Help:      "Total number of accepted status updates.",
	}, []string{"provider", "status"})

	checkErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skyshop",
		Subsystem: "reconciler",
		Name:      "check_errors_total",
		Help:      "Total number of failed order status checks.",
	}, []string{"provider"})
)
