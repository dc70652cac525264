package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the checkout HTTP handler
	CheckoutLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_latency_seconds",
		Help:    "Latency of the checkout endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Checkouts by outcome (success, product_not_found, invalid, error)
	CheckoutTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_requests_total",
		Help: "Total checkout requests by result",
	}, []string{"result"})

	// Total order status transitions applied
	StatusUpdateTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_status_updates_total",
		Help: "Total order status updates",
	})
)

func Init() {
	prometheus.MustRegister(
		CheckoutLatency,
		CheckoutTotal,
		StatusUpdateTotal,
	)
}
