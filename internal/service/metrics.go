package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created.",
	})

	itemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "orders",
		Name:      "items_added_total",
		Help:      "Total number of items added to orders.",
	})

	itemsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "orders",
		Name:      "items_rejected_total",
		Help:      "Total number of add-item rejections by business rule.",
	}, []string{"reason"})

	totalsCalculated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "orders",
		Name:      "totals_calculated_total",
		Help:      "Total number of order total calculations.",
	})
)
