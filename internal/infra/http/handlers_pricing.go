package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Spok95/fleet-ops/internal/domain/pricing"
)

type pricingQuoteRequest struct {
	VehicleClassID string                `json:"vehicleClassId"`
	PickupAt       time.Time             `json:"pickupAt"`
	DropoffAt      time.Time             `json:"dropoffAt"`
	RatePlanID     string                `json:"ratePlanId"`
	Extras         []pricing.ExtraCharge `json:"extras"`
	Currency       string                `json:"currency"`
}

func (s *Server) handlePricingQuote(w http.ResponseWriter, r *http.Request) {
	var req pricingQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.VehicleClassID == "" || req.PickupAt.IsZero() || req.DropoffAt.IsZero() {
		writeError(w, http.StatusBadRequest, "vehicleClassId, pickupAt and dropoffAt are required")
		return
	}

	quote, err := s.d.Engine.Quote(r.Context(), pricing.Input{
		VehicleClassID: req.VehicleClassID,
		PickupAt:       req.PickupAt,
		DropoffAt:      req.DropoffAt,
		RatePlanID:     req.RatePlanID,
		Extras:         req.Extras,
		Currency:       req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrVehicleClassNotFound):
			writeError(w, http.StatusNotFound, "vehicle class not found")
		case errors.Is(err, pricing.ErrPriceNotConfigured):
			writeError(w, http.StatusUnprocessableEntity, "price not configured")
		default:
			s.d.Log.Error("pricing quote failed", "err", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	quotesTotal.Inc()
	writeJSON(w, http.StatusOK, quote)
}
