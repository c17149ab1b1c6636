package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetops_pricing_quotes_total",
		Help: "Computed pricing quotes.",
	})
	reservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetops_reservations_created_total",
		Help: "Created reservations (confirmed).",
	})
)
