package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Spok95/fleet-ops/internal/domain/handover"
)

type handoverRequest struct {
	Odometer      *int              `json:"odometer"`
	FuelLevel     *int              `json:"fuelLevel"`
	Cleanliness   string            `json:"cleanliness"`
	Photos        []string          `json:"photos"`
	Damages       []handover.Damage `json:"damages"`
	SignatureBlob string            `json:"signatureBlob"`
	Notes         string            `json:"notes"`
	PerformedBy   *string           `json:"performedBy"`
}

// handleCheckout — выдача машины: фиксируем состояние, без начислений.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req handoverRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.FuelLevel != nil && (*req.FuelLevel < 0 || *req.FuelLevel > 100) {
		writeError(w, http.StatusBadRequest, "fuelLevel must be between 0 and 100")
		return
	}

	res, err := s.d.Reservations.GetByID(r.Context(), r.PathValue("reservationID"))
	if err != nil {
		s.d.Log.Error("handover: reservation load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	record, err := s.d.Handover.CreateCheck(r.Context(), handover.Check{
		ReservationID:       res.ID,
		Type:                handover.Checkout,
		PerformedBy:         req.PerformedBy,
		Odometer:            req.Odometer,
		FuelLevel:           req.FuelLevel,
		Cleanliness:         req.Cleanliness,
		Photos:              req.Photos,
		Damages:             req.Damages,
		SignatureBlob:       req.SignatureBlob,
		InternalChargesNote: req.Notes,
	})
	if err != nil {
		s.d.Log.Error("handover: checkout insert failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// handleCheckin — возврат машины: считаем опоздание и перепробег.
func (s *Server) handleCheckin(w http.ResponseWriter, r *http.Request) {
	var req handoverRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Odometer == nil {
		writeError(w, http.StatusBadRequest, "odometer is required")
		return
	}
	if req.FuelLevel != nil && (*req.FuelLevel < 0 || *req.FuelLevel > 100) {
		writeError(w, http.StatusBadRequest, "fuelLevel must be between 0 and 100")
		return
	}

	res, err := s.d.Reservations.GetByID(r.Context(), r.PathValue("reservationID"))
	if err != nil {
		s.d.Log.Error("handover: reservation load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	charges := handover.Calculate(handover.ChargeInput{
		PlannedReturn:  res.DropoffAt,
		ActualReturn:   time.Now(),
		IncludedKm:     s.d.Cfg.Handover.IncludedKm,
		ActualKm:       float64(*req.Odometer),
		LateFeePerHour: s.d.Cfg.Handover.LateFeePerHour,
		ExtraKmFee:     s.d.Cfg.Handover.ExtraKmFee,
	})

	record, err := s.d.Handover.CreateCheck(r.Context(), handover.Check{
		ReservationID: res.ID,
		Type:          handover.Checkin,
		PerformedBy:   req.PerformedBy,
		Odometer:      req.Odometer,
		FuelLevel:     req.FuelLevel,
		Cleanliness:   req.Cleanliness,
		Photos:        req.Photos,
		Damages:       req.Damages,
		SignatureBlob: req.SignatureBlob,
		InternalChargesNote: fmt.Sprintf(
			"Late minutes: %d, extra km: %g, total: %.2f",
			charges.MinutesLate, charges.ExtraKm, charges.Total,
		),
	})
	if err != nil {
		s.d.Log.Error("handover: checkin insert failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.d.Notifier.CheckinCharges(res.Code, charges.MinutesLate, charges.ExtraKm, charges.Total)

	writeJSON(w, http.StatusOK, map[string]any{
		"record":  record,
		"charges": charges,
	})
}

func (s *Server) handleListChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := s.d.Handover.ListByReservation(r.Context(), r.PathValue("reservationID"))
	if err != nil {
		s.d.Log.Error("handover: checks list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"checks": checks})
}
