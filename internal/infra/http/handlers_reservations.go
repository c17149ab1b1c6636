package http

import (
	"net/http"
	"time"

	"github.com/Spok95/fleet-ops/internal/domain/reservations"
)

type reservationRequest struct {
	PickupBranchID  string    `json:"pickupBranchId"`
	DropoffBranchID string    `json:"dropoffBranchId"`
	PickupAt        time.Time `json:"pickupAt"`
	DropoffAt       time.Time `json:"dropoffAt"`
	CustomerID      *string   `json:"customerId"`
	VehicleID       *string   `json:"vehicleId"`
	VehicleClassID  string    `json:"vehicleClassId"`
	RatePlanID      *string   `json:"ratePlanId"`
	TotalAmount     float64   `json:"totalAmount"`
	Currency        string    `json:"currency"`
	Notes           string    `json:"notes"`
}

func (s *Server) reservationParams(req reservationRequest) reservations.CreateParams {
	currency := req.Currency
	if currency == "" {
		currency = s.d.Cfg.Pricing.Currency
	}
	return reservations.CreateParams{
		PickupBranchID:  req.PickupBranchID,
		DropoffBranchID: req.DropoffBranchID,
		PickupAt:        req.PickupAt,
		DropoffAt:       req.DropoffAt,
		CustomerID:      req.CustomerID,
		VehicleID:       req.VehicleID,
		VehicleClassID:  req.VehicleClassID,
		RatePlanID:      req.RatePlanID,
		TotalAmount:     req.TotalAmount,
		Currency:        currency,
		Notes:           req.Notes,
	}
}

func validReservationRequest(req reservationRequest) bool {
	return req.PickupBranchID != "" && req.DropoffBranchID != "" &&
		req.VehicleClassID != "" && !req.PickupAt.IsZero() && !req.DropoffAt.IsZero()
}

// handleCreateQuote — расчёт сохраняется как inquiry с истечением через 6 часов.
func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !validReservationRequest(req) {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	res, err := s.d.Reservations.CreateQuote(r.Context(), s.reservationParams(req))
	if err != nil {
		s.d.Log.Error("quote create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"quoteId":   res.ID,
		"expiresAt": res.QuoteExpiresAt,
	})
}

func (s *Server) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !validReservationRequest(req) {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	res, err := s.d.Reservations.CreateReservation(r.Context(), s.reservationParams(req))
	if err != nil {
		s.d.Log.Error("reservation create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	reservationsCreated.Inc()
	s.d.Notifier.ReservationCreated(res.Code, res.TotalAmount, res.Currency)

	writeJSON(w, http.StatusCreated, reservationResponse(res))
}

func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	rows, err := s.d.Reservations.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.d.Log.Error("reservations list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": rows})
}

func (s *Server) handleGetReservation(w http.ResponseWriter, r *http.Request) {
	res, err := s.d.Reservations.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.d.Log.Error("reservation get failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, reservationResponse(res))
}

type statusUpdateRequest struct {
	Status reservations.Status `json:"status"`
}

func (s *Server) handleUpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := decodeJSON(r, &req); err != nil || req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	res, err := s.d.Reservations.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.d.Log.Error("reservation get failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if !res.Status.CanTransition(req.Status) {
		writeError(w, http.StatusUnprocessableEntity, "invalid status transition")
		return
	}
	if err := s.d.Reservations.UpdateStatus(r.Context(), res.ID, req.Status); err != nil {
		s.d.Log.Error("reservation status update failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	res.Status = req.Status
	writeJSON(w, http.StatusOK, reservationResponse(res))
}

func reservationResponse(res *reservations.Reservation) map[string]any {
	return map[string]any{
		"id":              res.ID,
		"code":            res.Code,
		"status":          res.Status,
		"statusBadge":     res.Status.Badge(),
		"pickupBranchId":  res.PickupBranchID,
		"dropoffBranchId": res.DropoffBranchID,
		"pickupAt":        res.PickupAt,
		"dropoffAt":       res.DropoffAt,
		"customerId":      res.CustomerID,
		"ratePlanId":      res.RatePlanID,
		"currency":        res.Currency,
		"quoteExpiresAt":  res.QuoteExpiresAt,
		"totalAmount":     res.TotalAmount,
	}
}
