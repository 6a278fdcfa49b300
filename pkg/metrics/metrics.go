package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	KafkaMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_published_total",
			Help: "Number of order events written to Kafka",
		},
		[]string{"topic", "result"}, // ok|error
	)
)

var (
	SessionOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "In-memory session store operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	SessionSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_store_size",
			Help: "Number of session entries currently held in memory",
		},
	)
)

var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations by kind",
		},
		[]string{"op"}, // add|merge|set|adjust|remove|clear
	)
	CartUnits = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cart_units",
			Help:    "Units in a cart after each change",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)
	CheckoutSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Checkout attempts by channel and outcome",
		},
		[]string{"channel", "result"}, // ok|invalid|failed|busy
	)
	RelayDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "form_relay_request_duration_seconds",
			Help:    "Latency of order form relay requests",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики в default registry. Повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesPublished,
			SessionOps, SessionSize,
			CartOps, CartUnits, CheckoutSubmissions, RelayDuration,
		)
	})
}
