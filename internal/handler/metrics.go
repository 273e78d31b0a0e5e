package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	messagesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "skyshop",
			Subsystem: "kafka_consumer",
			Name:      "messages_processed_total",
			Help:      "Total number of successfully processed order messages",
		},
	)

	messagesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "skyshop",
			Subsystem: "kafka_consumer",
			Name:      "messages_failed_total",
			Help:      "Total number of failed order message handling attempts",
		},
	)

	messagesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "skyshop",
			Subsystem: "kafka_consumer",
			Name:      "messages_dlq_total",
			Help:      "Total number of order messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "skyshop",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skyshop",
			Subsystem: "http",
			Name:      "orders_created_total",
			Help:      "Total number of orders created through the storefront endpoint",
		},
		[]string{"service"},
	)

	ordersRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skyshop",
			Subsystem: "http",
			Name:      "orders_rejected_total",
			Help:      "Total number of orders rejected by providers",
		},
		[]string{"service"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		messagesProcessed,
		messagesFailed,
		messagesDLQ,
		commitErrors,

		ordersCreated,
		ordersRejected,
	)
}
