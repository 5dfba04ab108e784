// Package metrics declares the Prometheus instruments of the service. They
// register with the default registry and are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveryops_status_transitions_total",
		Help: "Committed order status transitions by target status.",
	},
		[]string{"status"},
	)

	RejectedTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveryops_rejected_transitions_total",
		Help: "Status transitions refused by the validator, by reason.",
	},
		[]string{"reason"},
	)

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deliveryops_orders_created_total",
		Help: "Total number of orders created.",
	})

	SlipsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveryops_slips_created_total",
		Help: "Slips created, by stage.",
	},
		[]string{"stage"},
	)

	SlipConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveryops_slip_conflicts_total",
		Help: "Slip requests refused because an order was claimed or owned elsewhere, by stage.",
	},
		[]string{"stage"},
	)

	EventPublishErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveryops_event_publish_errors_total",
		Help: "Realtime events that could not be published, by event name.",
	},
		[]string{"event"},
	)

	UnclaimedReturns = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "deliveryops_unclaimed_returns",
		Help: "Returned orders not yet on a slip, by stage.",
	},
		[]string{"stage"},
	)
)
