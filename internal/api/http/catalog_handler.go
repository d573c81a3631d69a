package http

import (
	"net/http"
	"strconv"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
	querySvc   service.QueryService
}

func NewCatalogHandler(catalogSvc service.CatalogService, querySvc service.QueryService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc, querySvc: querySvc}
}

type manufacturerRequest struct {
	Name string `json:"name"`
}

func (h *CatalogHandler) CreateManufacturer(w http.ResponseWriter, r *http.Request) {
	var req manufacturerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}
	m, err := h.catalogSvc.CreateManufacturer(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *CatalogHandler) GetManufacturer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid manufacturer id")
		return
	}
	m, err := h.catalogSvc.GetManufacturer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *CatalogHandler) ListManufacturers(w http.ResponseWriter, r *http.Request) {
	ms, err := h.catalogSvc.ListManufacturers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ms)
}

func (h *CatalogHandler) UpdateManufacturer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid manufacturer id")
		return
	}
	var req manufacturerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}
	m := &domain.Manufacturer{ID: id, Name: req.Name}
	if err := h.catalogSvc.UpdateManufacturer(r.Context(), m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *CatalogHandler) DeleteManufacturer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid manufacturer id")
		return
	}
	if err := h.catalogSvc.DeleteManufacturer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type vehicleRequest struct {
	Model          string `json:"model"`
	Year           int    `json:"year"`
	OdometerKm     int    `json:"odometer_km"`
	ManufacturerID int64  `json:"manufacturer_id"`
}

func (h *CatalogHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Model == "" || req.Year == 0 || req.ManufacturerID == 0 {
		badRequest(w, "model, year and manufacturer_id are required")
		return
	}
	v := &domain.Vehicle{
		Model:          req.Model,
		Year:           req.Year,
		OdometerKm:     req.OdometerKm,
		ManufacturerID: req.ManufacturerID,
	}
	if err := h.catalogSvc.CreateVehicle(r.Context(), v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid vehicle id")
		return
	}
	v, err := h.catalogSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// ListVehicles supports ?manufacturer_id=, ?year= and ?min_odometer_km=.
func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	var f repository.VehicleFilter
	q := r.URL.Query()
	if v := q.Get("manufacturer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(w, "invalid manufacturer_id")
			return
		}
		f.ManufacturerID = &id
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			badRequest(w, "invalid year")
			return
		}
		f.Year = &year
	}
	if v := q.Get("min_odometer_km"); v != "" {
		km, err := strconv.Atoi(v)
		if err != nil {
			badRequest(w, "invalid min_odometer_km")
			return
		}
		f.MinOdometerKm = &km
	}

	vs, err := h.querySvc.ListVehicles(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vs)
}

func (h *CatalogHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid vehicle id")
		return
	}
	var req vehicleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v := &domain.Vehicle{
		ID:             id,
		Model:          req.Model,
		Year:           req.Year,
		ManufacturerID: req.ManufacturerID,
	}
	if err := h.catalogSvc.UpdateVehicle(r.Context(), v); err != nil {
		writeError(w, err)
		return
	}
	// Re-read for the authoritative odometer, which Update never touches.
	updated, err := h.catalogSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type odometerRequest struct {
	OdometerKm int `json:"odometer_km"`
}

func (h *CatalogHandler) RecordOdometer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid vehicle id")
		return
	}
	var req odometerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v, err := h.catalogSvc.RecordOdometer(r.Context(), id, req.OdometerKm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CatalogHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid vehicle id")
		return
	}
	if err := h.catalogSvc.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
