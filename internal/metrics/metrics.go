package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the order lifecycle and the notification feed
var (
	OrdersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aquasphere_orders_created_total",
			Help: "Total number of orders created, by payment method",
		},
		[]string{"payment_method"},
	)

	OrderTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aquasphere_order_transitions_total",
			Help: "Total number of committed order status transitions, by actor role and target status",
		},
		[]string{"role", "status"},
	)

	OrderTransitionsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aquasphere_order_transitions_rejected_total",
			Help: "Total number of rejected order status transitions, by reason",
		},
		[]string{"reason"},
	)

	NotificationClearsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aquasphere_notification_clears_total",
			Help: "Total number of notification clears",
		},
	)

	NotificationProjectionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aquasphere_notification_projection_duration_seconds",
			Help:    "Duration of notification feed projections",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Rejection reasons used as the reason label.
const (
	ReasonNotFound          = "not_found"
	ReasonInvalidTarget     = "invalid_target"
	ReasonIllegalTransition = "illegal_transition"
	ReasonStorageFailure    = "storage_failure"
	ReasonValidation        = "validation"
)

// Register registers all Prometheus metrics with reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(OrdersCreatedTotal)
	reg.MustRegister(OrderTransitionsTotal)
	reg.MustRegister(OrderTransitionsRejectedTotal)
	reg.MustRegister(NotificationClearsTotal)
	reg.MustRegister(NotificationProjectionDuration)
}
