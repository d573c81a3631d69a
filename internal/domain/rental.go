package domain

import "time"

// Rental binds one customer to one vehicle over a date interval.
//
// A rental is open while ReturnDate is nil and closes exactly once. The
// odometer snapshot fields are captured server-side: StartOdometerKm at open,
// EndOdometerKm at close. TotalCents is always the derivation
// max(1, days) * DailyRateCents, provisional against EndDate while open and
// final against ReturnDate once closed. It is never writable by callers.
type Rental struct {
	ID              int64      `json:"id"`
	CustomerID      int64      `json:"customer_id"`
	VehicleID       int64      `json:"vehicle_id"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	StartOdometerKm int        `json:"start_odometer_km"`
	EndOdometerKm   *int       `json:"end_odometer_km,omitempty"`
	DailyRateCents  int64      `json:"daily_rate_cents"`
	TotalCents      int64      `json:"total_cents"`
}

// Open reports whether the rental has not yet been returned.
func (r *Rental) Open() bool {
	return r.ReturnDate == nil
}

// BillingEnd is the date the total is derived from: the actual return date
// once closed, the planned end date while open.
func (r *Rental) BillingEnd() time.Time {
	if r.ReturnDate != nil {
		return *r.ReturnDate
	}
	return r.EndDate
}
