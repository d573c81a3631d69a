package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentHandler_Record(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		paymentSvc := new(MockPaymentService)
		handler := NewPaymentHandler(paymentSvc, new(MockQueryService))

		paymentSvc.On("RecordPayment", mock.Anything, int64(7), day("2026-03-02"), int64(15000), "card").
			Return(&domain.Payment{
				ID: 11, RentalID: 7, PaidOn: day("2026-03-02"), AmountCents: 15000, Method: "card",
			}, nil)

		body := `{"rental_id":7,"date":"2026-03-02","amount_cents":15000,"method":"card"}`
		req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Record(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var v paymentView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
		assert.Equal(t, int64(11), v.ID)
		assert.Equal(t, "2026-03-02", v.PaidOn)
		assert.Nil(t, v.ReversalOf)
	})

	t.Run("Overpayment maps to 409", func(t *testing.T) {
		paymentSvc := new(MockPaymentService)
		handler := NewPaymentHandler(paymentSvc, new(MockQueryService))

		paymentSvc.On("RecordPayment", mock.Anything, int64(7), day("2026-03-02"), int64(99000), "card").
			Return(nil, domain.ErrOverpayment)

		body := `{"rental_id":7,"date":"2026-03-02","amount_cents":99000,"method":"card"}`
		req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Record(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Payment before rental start maps to 400", func(t *testing.T) {
		paymentSvc := new(MockPaymentService)
		handler := NewPaymentHandler(paymentSvc, new(MockQueryService))

		paymentSvc.On("RecordPayment", mock.Anything, int64(7), day("2026-02-28"), int64(15000), "card").
			Return(nil, domain.ErrBeforeRentalStart)

		body := `{"rental_id":7,"date":"2026-02-28","amount_cents":15000,"method":"card"}`
		req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Record(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_Reverse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		paymentSvc := new(MockPaymentService)
		handler := NewPaymentHandler(paymentSvc, new(MockQueryService))

		orig := int64(11)
		paymentSvc.On("ReversePayment", mock.Anything, orig).
			Return(&domain.Payment{
				ID: 12, RentalID: 7, PaidOn: day("2026-03-09"),
				AmountCents: -15000, Method: "card", ReversalOf: &orig,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/11/reverse", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "11"})
		rec := httptest.NewRecorder()

		handler.Reverse(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var v paymentView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
		assert.Equal(t, int64(-15000), v.AmountCents)
		assert.Equal(t, int64(11), *v.ReversalOf)
	})

	t.Run("Already reversed maps to 409", func(t *testing.T) {
		paymentSvc := new(MockPaymentService)
		handler := NewPaymentHandler(paymentSvc, new(MockQueryService))

		paymentSvc.On("ReversePayment", mock.Anything, int64(11)).
			Return(nil, domain.ErrConflict)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/11/reverse", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "11"})
		rec := httptest.NewRecorder()

		handler.Reverse(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestPaymentHandler_List(t *testing.T) {
	querySvc := new(MockQueryService)
	handler := NewPaymentHandler(new(MockPaymentService), querySvc)

	orig := int64(11)
	querySvc.On("ListPayments", mock.Anything, mock.MatchedBy(func(f repository.PaymentFilter) bool {
		return f.RentalID != nil && *f.RentalID == 7
	})).Return([]domain.Payment{
		{ID: 11, RentalID: 7, PaidOn: day("2026-03-02"), AmountCents: 15000},
		{ID: 12, RentalID: 7, PaidOn: day("2026-03-09"), AmountCents: -15000, ReversalOf: &orig},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/payments?rental_id=7", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var vs []paymentView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vs))
	assert.Len(t, vs, 2)
	assert.Equal(t, int64(11), *vs[1].ReversalOf)
}
