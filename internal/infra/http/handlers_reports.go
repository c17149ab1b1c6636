package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Spok95/fleet-ops/internal/domain/reports"
)

func (s *Server) handleOccupancyReport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.d.Reports.Occupancy(r.Context())
	if err != nil {
		s.d.Log.Error("occupancy report failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": rows})
}

func (s *Server) handleUtilizationReport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.d.Reports.Utilization(r.Context())
	if err != nil {
		s.d.Log.Error("utilization report failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": rows})
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	rows, err := s.d.Reports.ReservationsForExport(r.Context(), 0)
	if err != nil {
		s.d.Log.Error("export load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	data, err := reports.ReservationsWorkbook(rows)
	if err != nil {
		s.d.Log.Error("export workbook failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	fileName := fmt.Sprintf("reservations_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	_, _ = w.Write(data)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := s.d.Reports.ReservationsForExport(r.Context(), 0)
	if err != nil {
		s.d.Log.Error("export load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=reservations.csv")

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"code", "status", "pickup_at", "dropoff_at", "currency", "total_amount"})
	for _, row := range rows {
		_ = cw.Write([]string{
			row.Code,
			row.Status,
			row.PickupAt.Format(time.RFC3339),
			row.DropoffAt.Format(time.RFC3339),
			row.Currency,
			strconv.FormatFloat(row.TotalAmount, 'f', 2, 64),
		})
	}
	cw.Flush()
}
