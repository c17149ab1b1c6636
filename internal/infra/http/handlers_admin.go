package http

import (
	"net/http"
	"time"

	"github.com/Spok95/fleet-ops/internal/domain/customers"
	"github.com/Spok95/fleet-ops/internal/domain/fleet"
	"github.com/Spok95/fleet-ops/internal/domain/pricing"
	"github.com/Spok95/fleet-ops/internal/domain/settings"
)

/* Branches */

func (s *Server) handleListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := s.d.Fleet.ListBranches(r.Context())
	if err != nil {
		s.d.Log.Error("branches list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"branches": branches})
}

func (s *Server) handleCreateBranch(w http.ResponseWriter, r *http.Request) {
	var b fleet.Branch
	if err := decodeJSON(r, &b); err != nil || b.Code == "" || b.Name == "" {
		writeError(w, http.StatusBadRequest, "code and name are required")
		return
	}
	out, err := s.d.Fleet.CreateBranch(r.Context(), b)
	if err != nil {
		s.d.Log.Error("branch create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

/* Vehicle classes */

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := s.d.Fleet.ListClasses(r.Context())
	if err != nil {
		s.d.Log.Error("classes list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"classes": classes})
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	var c fleet.VehicleClass
	if err := decodeJSON(r, &c); err != nil || c.Code == "" || c.Name == "" {
		writeError(w, http.StatusBadRequest, "code and name are required")
		return
	}
	out, err := s.d.Fleet.CreateClass(r.Context(), c)
	if err != nil {
		s.d.Log.Error("class create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

/* Vehicles */

func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.d.Fleet.ListVehicles(r.Context())
	if err != nil {
		s.d.Log.Error("vehicles list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"vehicles": vehicles})
}

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v fleet.Vehicle
	if err := decodeJSON(r, &v); err != nil || v.VIN == "" || v.Plate == "" || v.VehicleClassID == "" {
		writeError(w, http.StatusBadRequest, "vin, plate and vehicle class are required")
		return
	}
	out, err := s.d.Fleet.CreateVehicle(r.Context(), v)
	if err != nil {
		s.d.Log.Error("vehicle create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var v fleet.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	v.ID = r.PathValue("id")
	existing, err := s.d.Fleet.GetVehicleByID(r.Context(), v.ID)
	if err != nil {
		s.d.Log.Error("vehicle load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err := s.d.Fleet.UpdateVehicle(r.Context(), v); err != nil {
		s.d.Log.Error("vehicle update failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := s.d.Fleet.DeleteVehicle(r.Context(), r.PathValue("id")); err != nil {
		s.d.Log.Error("vehicle delete failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* Rate plans */

func (s *Server) handleListRatePlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.d.Pricing.ListRatePlans(r.Context())
	if err != nil {
		s.d.Log.Error("rate plans list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ratePlans": plans})
}

func (s *Server) handleCreateRatePlan(w http.ResponseWriter, r *http.Request) {
	var p pricing.RatePlan
	if err := decodeJSON(r, &p); err != nil || p.Code == "" || p.Name == "" {
		writeError(w, http.StatusBadRequest, "code and name are required")
		return
	}
	out, err := s.d.Pricing.CreateRatePlan(r.Context(), p)
	if err != nil {
		s.d.Log.Error("rate plan create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleSetRatePlanActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	plan, err := s.d.Pricing.GetRatePlanByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.d.Log.Error("rate plan load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err := s.d.Pricing.SetRatePlanActive(r.Context(), plan.ID, req.Active); err != nil {
		s.d.Log.Error("rate plan update failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}

/* Prices */

type priceRowRequest struct {
	RatePlanID        string  `json:"ratePlanId"`
	VehicleClassID    string  `json:"vehicleClassId"`
	StartDate         *string `json:"startDate"`
	EndDate           *string `json:"endDate"`
	BaseAmount        float64 `json:"baseAmount"`
	WeekendMultiplier float64 `json:"weekendMultiplier"`
	Currency          string  `json:"currency"`
}

func (s *Server) handleListPrices(w http.ResponseWriter, r *http.Request) {
	classID := r.URL.Query().Get("class")
	if classID == "" {
		writeError(w, http.StatusBadRequest, "class query parameter is required")
		return
	}
	rows, err := s.d.Pricing.ListPriceRows(r.Context(), classID)
	if err != nil {
		s.d.Log.Error("prices list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"prices": rows})
}

func (s *Server) handleCreatePrice(w http.ResponseWriter, r *http.Request) {
	var req priceRowRequest
	if err := decodeJSON(r, &req); err != nil || req.RatePlanID == "" || req.VehicleClassID == "" || req.BaseAmount <= 0 {
		writeError(w, http.StatusBadRequest, "ratePlanId, vehicleClassId and positive baseAmount are required")
		return
	}
	row := pricing.PriceRow{
		RatePlanID:        req.RatePlanID,
		VehicleClassID:    req.VehicleClassID,
		BaseAmount:        req.BaseAmount,
		WeekendMultiplier: req.WeekendMultiplier,
		Currency:          req.Currency,
	}
	if req.StartDate != nil {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid startDate")
			return
		}
		row.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid endDate")
			return
		}
		row.EndDate = &t
	}
	out, err := s.d.Pricing.CreatePriceRow(r.Context(), row)
	if err != nil {
		s.d.Log.Error("price create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleDeletePrice(w http.ResponseWriter, r *http.Request) {
	if err := s.d.Pricing.DeletePriceRow(r.Context(), r.PathValue("id")); err != nil {
		s.d.Log.Error("price delete failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* Extras */

func (s *Server) handleListExtras(w http.ResponseWriter, r *http.Request) {
	extras, err := s.d.Pricing.ListExtras(r.Context())
	if err != nil {
		s.d.Log.Error("extras list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"extras": extras})
}

func (s *Server) handleCreateExtra(w http.ResponseWriter, r *http.Request) {
	var e pricing.Extra
	if err := decodeJSON(r, &e); err != nil || e.Code == "" || e.Name == "" {
		writeError(w, http.StatusBadRequest, "code and name are required")
		return
	}
	e.Active = true
	out, err := s.d.Pricing.CreateExtra(r.Context(), e)
	if err != nil {
		s.d.Log.Error("extra create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleGetExtraStock(w http.ResponseWriter, r *http.Request) {
	branchID := r.URL.Query().Get("branch")
	if branchID == "" {
		writeError(w, http.StatusBadRequest, "branch query parameter is required")
		return
	}
	qty, err := s.d.Pricing.GetExtraStock(r.Context(), r.PathValue("id"), branchID)
	if err != nil {
		s.d.Log.Error("extra stock load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"quantity": qty})
}

func (s *Server) handleSetExtraStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BranchID string `json:"branchId"`
		Quantity int    `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil || req.BranchID == "" || req.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "branchId and non-negative quantity are required")
		return
	}
	if err := s.d.Pricing.SetExtraStock(r.Context(), r.PathValue("id"), req.BranchID, req.Quantity); err != nil {
		s.d.Log.Error("extra stock save failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"quantity": req.Quantity})
}

/* Settings */

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	policy, err := s.d.Settings.GetPolicy(r.Context())
	if err != nil {
		s.d.Log.Error("settings load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, policy)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var policy settings.Policy
	if err := decodeJSON(r, &policy); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := s.d.Settings.SetPolicy(r.Context(), policy); err != nil {
		s.d.Log.Error("settings save failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, policy)
}

/* Customers */

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := s.d.Customers.List(r.Context())
	if err != nil {
		s.d.Log.Error("customers list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customers": list})
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var c customers.Customer
	if err := decodeJSON(r, &c); err != nil || c.FullName == "" {
		writeError(w, http.StatusBadRequest, "fullName is required")
		return
	}
	out, err := s.d.Customers.Create(r.Context(), c)
	if err != nil {
		s.d.Log.Error("customer create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var c customers.Customer
	if err := decodeJSON(r, &c); err != nil || c.FullName == "" {
		writeError(w, http.StatusBadRequest, "fullName is required")
		return
	}
	c.ID = r.PathValue("id")
	existing, err := s.d.Customers.GetByID(r.Context(), c.ID)
	if err != nil {
		s.d.Log.Error("customer load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err := s.d.Customers.Update(r.Context(), c); err != nil {
		s.d.Log.Error("customer update failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, c)
}
