package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EquipmentCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skirent_equipment_created_total",
		Help: "Total number of equipment items added to the catalog.",
	})

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skirent_orders_placed_total",
		Help: "Total number of orders successfully placed.",
	})

	OrdersReturnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skirent_orders_returned_total",
		Help: "Total number of orders successfully returned.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skirent_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
