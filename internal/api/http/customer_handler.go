package http

import (
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
	querySvc    service.QueryService
}

func NewCustomerHandler(customerSvc service.CustomerService, querySvc service.QueryService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc, querySvc: querySvc}
}

type customerRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.NationalID == "" {
		badRequest(w, "name and national_id are required")
		return
	}
	c, err := h.customerSvc.CreateCustomer(r.Context(), req.Name, req.NationalID, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid customer id")
		return
	}
	c, err := h.customerSvc.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// List supports ?name= substring matching, case-insensitive.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.querySvc.ListCustomers(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid customer id")
		return
	}
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.NationalID == "" {
		badRequest(w, "name and national_id are required")
		return
	}
	c := &domain.Customer{ID: id, Name: req.Name, NationalID: req.NationalID, Email: req.Email}
	if err := h.customerSvc.UpdateCustomer(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid customer id")
		return
	}
	if err := h.customerSvc.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
