package http

import (
	"net/http"
	"strconv"

	"github.com/Spok95/fleet-ops/internal/domain/telematics"
)

func (s *Server) handleTelematicsWebhook(w http.ResponseWriter, r *http.Request) {
	var payload telematics.Payload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if payload.VehicleID == "" || payload.RecordedAt.IsZero() {
		writeError(w, http.StatusBadRequest, "vehicleId and recordedAt are required")
		return
	}
	if err := s.d.Telematics.Ingest(r.Context(), payload); err != nil {
		s.d.Log.Error("telematics ingest failed", "err", err, "vehicle_id", payload.VehicleID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) handleVehicleTelemetry(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	events, err := s.d.Telematics.ListByVehicle(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		s.d.Log.Error("telematics list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}
