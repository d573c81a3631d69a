package http

import (
	"fleetrent-backend/internal/billing"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

// Wire views: same shape as the domain structs but with yyyy-mm-dd dates and
// the derived open/settled flags spelled out.

type rentalView struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customer_id"`
	VehicleID       int64   `json:"vehicle_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	ReturnDate      *string `json:"return_date,omitempty"`
	StartOdometerKm int     `json:"start_odometer_km"`
	EndOdometerKm   *int    `json:"end_odometer_km,omitempty"`
	DailyRateCents  int64   `json:"daily_rate_cents"`
	TotalCents      int64   `json:"total_cents"`
	Open            bool    `json:"open"`
}

type rentalStatementView struct {
	rentalView
	PaidCents int64 `json:"paid_cents"`
	Settled   bool  `json:"settled"`
}

type paymentView struct {
	ID          int64  `json:"id"`
	RentalID    int64  `json:"rental_id"`
	PaidOn      string `json:"paid_on"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method,omitempty"`
	ReversalOf  *int64 `json:"reversal_of,omitempty"`
}

func toRentalView(rt *domain.Rental) rentalView {
	v := rentalView{
		ID:              rt.ID,
		CustomerID:      rt.CustomerID,
		VehicleID:       rt.VehicleID,
		StartDate:       rt.StartDate.Format(billing.DateFormat),
		EndDate:         rt.EndDate.Format(billing.DateFormat),
		StartOdometerKm: rt.StartOdometerKm,
		EndOdometerKm:   rt.EndOdometerKm,
		DailyRateCents:  rt.DailyRateCents,
		TotalCents:      rt.TotalCents,
		Open:            rt.Open(),
	}
	if rt.ReturnDate != nil {
		s := rt.ReturnDate.Format(billing.DateFormat)
		v.ReturnDate = &s
	}
	return v
}

func toRentalViews(rts []domain.Rental) []rentalView {
	views := make([]rentalView, 0, len(rts))
	for i := range rts {
		views = append(views, toRentalView(&rts[i]))
	}
	return views
}

func toStatementView(st *service.RentalStatement) rentalStatementView {
	return rentalStatementView{
		rentalView: toRentalView(&st.Rental),
		PaidCents:  st.PaidCents,
		Settled:    st.Settled,
	}
}

func toPaymentView(p *domain.Payment) paymentView {
	return paymentView{
		ID:          p.ID,
		RentalID:    p.RentalID,
		PaidOn:      p.PaidOn.Format(billing.DateFormat),
		AmountCents: p.AmountCents,
		Method:      p.Method,
		ReversalOf:  p.ReversalOf,
	}
}

func toPaymentViews(ps []domain.Payment) []paymentView {
	views := make([]paymentView, 0, len(ps))
	for i := range ps {
		views = append(views, toPaymentView(&ps[i]))
	}
	return views
}
