package service

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

// CatalogService maintains manufacturers and vehicles. The vehicle odometer
// is write-restricted: RecordOdometer here and rental close are its only
// writers.
type CatalogService interface {
	CreateManufacturer(ctx context.Context, name string) (*domain.Manufacturer, error)
	GetManufacturer(ctx context.Context, id int64) (*domain.Manufacturer, error)
	ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error)
	UpdateManufacturer(ctx context.Context, m *domain.Manufacturer) error
	DeleteManufacturer(ctx context.Context, id int64) error

	CreateVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error
	RecordOdometer(ctx context.Context, vehicleID int64, km int) (*domain.Vehicle, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, name, nationalID, email string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}

// RentalService is the rental ledger: it owns the open/close lifecycle and
// the derived total.
type RentalService interface {
	OpenRental(ctx context.Context, customerID, vehicleID int64, start, end time.Time, dailyRateCents int64) (*domain.Rental, error)
	CloseRental(ctx context.Context, rentalID int64, returnDate time.Time, endOdometerKm int) (*domain.Rental, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	AmountOwed(ctx context.Context, rentalID int64) (int64, error)
	DeleteRental(ctx context.Context, id int64) error
}

// PaymentService reconciles payments against a rental's amount owed.
type PaymentService interface {
	RecordPayment(ctx context.Context, rentalID int64, date time.Time, amountCents int64, method string) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	IsSettled(ctx context.Context, rentalID int64) (bool, error)
	ReversePayment(ctx context.Context, paymentID int64) (*domain.Payment, error)
}

// RentalStatement is a rental together with its reconciliation state. Open or
// closed and settled or unsettled are independent axes; both are exposed.
type RentalStatement struct {
	Rental    domain.Rental `json:"rental"`
	PaidCents int64         `json:"paid_cents"`
	Settled   bool          `json:"settled"`
}

// QueryService answers filtered, read-only listings.
type QueryService interface {
	ListRentals(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error)
	ListVehicles(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, error)
	ListCustomers(ctx context.Context, nameContains string) ([]domain.Customer, error)
	ListPayments(ctx context.Context, f repository.PaymentFilter) ([]domain.Payment, error)
	GetRentalStatement(ctx context.Context, rentalID int64) (*RentalStatement, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, toEmail, toName string, rental *domain.Rental) error
}
