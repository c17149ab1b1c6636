package http

import (
	"net/http"
	"time"

	"github.com/Spok95/fleet-ops/internal/domain/reservations"
)

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := time.Parse(time.RFC3339, q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from")
		return
	}
	to, err := time.Parse(time.RFC3339, q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to")
		return
	}

	ctx := r.Context()
	vehicles, err := s.d.Reservations.VehicleRows(ctx)
	if err != nil {
		s.d.Log.Error("availability: vehicles load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	busy, err := s.d.Reservations.BusyVehicleIDs(ctx, from, to)
	if err != nil {
		s.d.Log.Error("availability: busy set failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	result := reservations.Resolve(vehicles, busy, reservations.Filters{
		PickupBranch: q.Get("pickup_branch"),
		ClassCode:    q.Get("class"),
	})
	writeJSON(w, http.StatusOK, map[string]any{"availability": result})
}
