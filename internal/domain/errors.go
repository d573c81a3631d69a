package domain

import "errors"

// Error taxonomy for the rental core. Services wrap these with entity ids via
// fmt.Errorf("%w: ...") so callers can both match with errors.Is and see what
// was wrong.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidReturn   = errors.New("invalid return")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidMileage  = errors.New("invalid mileage")

	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrOverpayment        = errors.New("overpayment")
	ErrAlreadyClosed      = errors.New("rental already closed")
	ErrHasDependents      = errors.New("has dependent records")
	ErrBeforeRentalStart  = errors.New("payment date before rental start")

	// ErrDuplicateNationalID is a uniqueness conflict on the customer registry.
	ErrDuplicateNationalID = errors.New("duplicate national id")
)
