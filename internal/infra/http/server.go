package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Spok95/fleet-ops/internal/config"
	"github.com/Spok95/fleet-ops/internal/domain/customers"
	"github.com/Spok95/fleet-ops/internal/domain/fleet"
	"github.com/Spok95/fleet-ops/internal/domain/handover"
	"github.com/Spok95/fleet-ops/internal/domain/pricing"
	"github.com/Spok95/fleet-ops/internal/domain/reports"
	"github.com/Spok95/fleet-ops/internal/domain/reservations"
	"github.com/Spok95/fleet-ops/internal/domain/settings"
	"github.com/Spok95/fleet-ops/internal/domain/telematics"
	"github.com/Spok95/fleet-ops/internal/infra/notify"
)

type Deps struct {
	Log          *slog.Logger
	Cfg          config.Config
	Engine       *pricing.Engine
	Fleet        *fleet.Repo
	Pricing      *pricing.Repo
	Customers    *customers.Repo
	Reservations *reservations.Repo
	Handover     *handover.Repo
	Telematics   *telematics.Repo
	Reports      *reports.Repo
	Settings     *settings.Repo
	Notifier     *notify.Notifier
}

type Server struct {
	srv *http.Server
	d   Deps
}

func New(d Deps) *Server {
	s := &Server{d: d}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if d.Cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	mux.HandleFunc("POST /api/pricing/quote", s.handlePricingQuote)
	mux.HandleFunc("GET /api/availability", s.handleAvailability)

	mux.HandleFunc("POST /api/quotes", s.handleCreateQuote)
	mux.HandleFunc("POST /api/reservations", s.handleCreateReservation)
	mux.HandleFunc("GET /api/reservations", s.handleListReservations)
	mux.HandleFunc("GET /api/reservations/{id}", s.handleGetReservation)
	mux.HandleFunc("PATCH /api/reservations/{id}", s.handleUpdateReservationStatus)

	mux.HandleFunc("POST /api/handover/{reservationID}/checkout", s.handleCheckout)
	mux.HandleFunc("POST /api/handover/{reservationID}/checkin", s.handleCheckin)
	mux.HandleFunc("GET /api/handover/{reservationID}", s.handleListChecks)

	mux.HandleFunc("POST /api/webhooks/telematics", s.handleTelematicsWebhook)
	mux.HandleFunc("GET /api/vehicles/{id}/telemetry", s.handleVehicleTelemetry)

	mux.HandleFunc("GET /api/admin/branches", s.handleListBranches)
	mux.HandleFunc("POST /api/admin/branches", s.handleCreateBranch)
	mux.HandleFunc("GET /api/admin/vehicle-classes", s.handleListClasses)
	mux.HandleFunc("POST /api/admin/vehicle-classes", s.handleCreateClass)
	mux.HandleFunc("GET /api/admin/vehicles", s.handleListVehicles)
	mux.HandleFunc("POST /api/admin/vehicles", s.handleCreateVehicle)
	mux.HandleFunc("PUT /api/admin/vehicles/{id}", s.handleUpdateVehicle)
	mux.HandleFunc("DELETE /api/admin/vehicles/{id}", s.handleDeleteVehicle)
	mux.HandleFunc("GET /api/admin/rate-plans", s.handleListRatePlans)
	mux.HandleFunc("POST /api/admin/rate-plans", s.handleCreateRatePlan)
	mux.HandleFunc("PATCH /api/admin/rate-plans/{id}", s.handleSetRatePlanActive)
	mux.HandleFunc("GET /api/admin/prices", s.handleListPrices)
	mux.HandleFunc("POST /api/admin/prices", s.handleCreatePrice)
	mux.HandleFunc("DELETE /api/admin/prices/{id}", s.handleDeletePrice)
	mux.HandleFunc("GET /api/admin/extras", s.handleListExtras)
	mux.HandleFunc("POST /api/admin/extras", s.handleCreateExtra)
	mux.HandleFunc("GET /api/admin/extras/{id}/stock", s.handleGetExtraStock)
	mux.HandleFunc("PUT /api/admin/extras/{id}/stock", s.handleSetExtraStock)
	mux.HandleFunc("GET /api/admin/settings", s.handleGetSettings)
	mux.HandleFunc("PUT /api/admin/settings", s.handlePutSettings)
	mux.HandleFunc("GET /api/admin/customers", s.handleListCustomers)
	mux.HandleFunc("POST /api/admin/customers", s.handleCreateCustomer)
	mux.HandleFunc("PUT /api/admin/customers/{id}", s.handleUpdateCustomer)

	mux.HandleFunc("GET /api/reports/occupancy", s.handleOccupancyReport)
	mux.HandleFunc("GET /api/reports/utilization", s.handleUtilizationReport)
	mux.HandleFunc("GET /api/export/reservations.xlsx", s.handleExportXLSX)
	mux.HandleFunc("GET /api/export/csv", s.handleExportCSV)

	s.srv = &http.Server{Addr: d.Cfg.HTTP.Addr, Handler: mux}
	return s
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
