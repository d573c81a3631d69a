package http

import (
	"net/http"
	"strconv"

	"fleetrent-backend/internal/billing"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
	querySvc   service.QueryService
}

func NewPaymentHandler(paymentSvc service.PaymentService, querySvc service.QueryService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, querySvc: querySvc}
}

type recordPaymentRequest struct {
	RentalID    int64  `json:"rental_id"`
	Date        string `json:"date"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, err := billing.ParseDate(req.Date)
	if err != nil {
		badRequest(w, "invalid date, expected yyyy-mm-dd")
		return
	}

	p, err := h.paymentSvc.RecordPayment(r.Context(), req.RentalID, date, req.AmountCents, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentView(p))
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid payment id")
		return
	}
	p, err := h.paymentSvc.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentView(p))
}

func (h *PaymentHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid payment id")
		return
	}
	counter, err := h.paymentSvc.ReversePayment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentView(counter))
}

// List supports ?rental_id=.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	var f repository.PaymentFilter
	if v := r.URL.Query().Get("rental_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(w, "invalid rental_id")
			return
		}
		f.RentalID = &id
	}

	ps, err := h.querySvc.ListPayments(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentViews(ps))
}
