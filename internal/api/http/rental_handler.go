package http

import (
	"net/http"
	"strconv"

	"fleetrent-backend/internal/billing"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
	querySvc  service.QueryService
}

func NewRentalHandler(rentalSvc service.RentalService, querySvc service.QueryService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, querySvc: querySvc}
}

type openRentalRequest struct {
	CustomerID     int64  `json:"customer_id"`
	VehicleID      int64  `json:"vehicle_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	DailyRateCents int64  `json:"daily_rate_cents"`
}

func (h *RentalHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	start, err := billing.ParseDate(req.StartDate)
	if err != nil {
		badRequest(w, "invalid start_date, expected yyyy-mm-dd")
		return
	}
	end, err := billing.ParseDate(req.EndDate)
	if err != nil {
		badRequest(w, "invalid end_date, expected yyyy-mm-dd")
		return
	}

	rt, err := h.rentalSvc.OpenRental(r.Context(), req.CustomerID, req.VehicleID, start, end, req.DailyRateCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRentalView(rt))
}

type returnRentalRequest struct {
	ReturnDate    string `json:"return_date"`
	EndOdometerKm int    `json:"end_odometer_km"`
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid rental id")
		return
	}
	var req returnRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	returnDate, err := billing.ParseDate(req.ReturnDate)
	if err != nil {
		badRequest(w, "invalid return_date, expected yyyy-mm-dd")
		return
	}

	rt, err := h.rentalSvc.CloseRental(r.Context(), id, returnDate, req.EndOdometerKm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalView(rt))
}

// Get returns the rental with its reconciliation state (paid sum, settled).
func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid rental id")
		return
	}
	st, err := h.querySvc.GetRentalStatement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatementView(st))
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid rental id")
		return
	}
	if err := h.rentalSvc.DeleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List supports ?customer_id=, ?open=, ?min_total_cents= and ?settled=.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	var f repository.RentalFilter
	q := r.URL.Query()
	if v := q.Get("customer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(w, "invalid customer_id")
			return
		}
		f.CustomerID = &id
	}
	if v := q.Get("open"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(w, "invalid open flag")
			return
		}
		f.Open = &open
	}
	if v := q.Get("min_total_cents"); v != "" {
		min, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(w, "invalid min_total_cents")
			return
		}
		f.MinTotalCents = &min
	}
	if v := q.Get("settled"); v != "" {
		settled, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(w, "invalid settled flag")
			return
		}
		f.Settled = &settled
	}

	rts, err := h.querySvc.ListRentals(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalViews(rts))
}
