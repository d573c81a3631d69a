package repository

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
)

// Filters use pointer fields: nil means "don't filter on this". Listings are
// ordered by id ascending.

type VehicleFilter struct {
	ManufacturerID *int64
	Year           *int
	MinOdometerKm  *int
}

type RentalFilter struct {
	CustomerID    *int64
	Open          *bool
	MinTotalCents *int64
	Settled       *bool
}

type PaymentFilter struct {
	RentalID *int64
}

type ManufacturerRepository interface {
	Create(ctx context.Context, m *domain.Manufacturer) error
	GetByID(ctx context.Context, id int64) (*domain.Manufacturer, error)
	List(ctx context.Context) ([]domain.Manufacturer, error)
	Update(ctx context.Context, m *domain.Manufacturer) error
	// Delete fails with domain.ErrHasDependents while vehicles reference the
	// manufacturer.
	Delete(ctx context.Context, id int64) error
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, f VehicleFilter) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	// UpdateOdometer fails with domain.ErrInvalidMileage if km is below the
	// current reading. The only other odometer writer is RentalRepository.Close.
	UpdateOdometer(ctx context.Context, id int64, km int) error
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	// Create fails with domain.ErrDuplicateNationalID on a national id clash.
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	// List filters by case-insensitive name containment; empty matches all.
	List(ctx context.Context, nameContains string) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type RentalRepository interface {
	// Create runs the availability check and the odometer snapshot in one
	// transaction, holding a lock on the vehicle row so concurrent opens for
	// the same vehicle serialize. It fills in StartOdometerKm and ID, and
	// fails with domain.ErrVehicleUnavailable on an interval overlap with an
	// open rental of the same vehicle.
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, f RentalFilter) ([]domain.Rental, error)
	// Close records the return and moves the vehicle odometer in one
	// transaction. Fails with domain.ErrAlreadyClosed if the rental is not
	// open and domain.ErrInvalidMileage if the odometer would move backwards.
	Close(ctx context.Context, r *domain.Rental) error
	// Delete fails with domain.ErrHasDependents while payments exist.
	Delete(ctx context.Context, id int64) error
}

type PaymentRepository interface {
	// Create checks the running payment sum against the rental total under a
	// lock on the rental row, failing with domain.ErrOverpayment when
	// sum + amount would exceed total + toleranceCents.
	Create(ctx context.Context, p *domain.Payment, toleranceCents int64) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context, f PaymentFilter) ([]domain.Payment, error)
	SumByRental(ctx context.Context, rentalID int64) (int64, error)
	// Reverse appends the negated counter-entry for the given payment, dated
	// on. Fails with domain.ErrNotFound if the payment is absent or is itself
	// a reversal, and domain.ErrConflict if it was already reversed.
	Reverse(ctx context.Context, paymentID int64, on time.Time) (*domain.Payment, error)
}
