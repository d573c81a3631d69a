package http

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) OpenRental(ctx context.Context, customerID, vehicleID int64, start, end time.Time, dailyRateCents int64) (*domain.Rental, error) {
	args := m.Called(ctx, customerID, vehicleID, start, end, dailyRateCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CloseRental(ctx context.Context, rentalID int64, returnDate time.Time, endOdometerKm int) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, returnDate, endOdometerKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) AmountOwed(ctx context.Context, rentalID int64) (int64, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalService) DeleteRental(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, rentalID int64, date time.Time, amountCents int64, method string) (*domain.Payment, error) {
	args := m.Called(ctx, rentalID, date, amountCents, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) IsSettled(ctx context.Context, rentalID int64) (bool, error) {
	args := m.Called(ctx, rentalID)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentService) ReversePayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

// MockQueryService
type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) ListRentals(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockQueryService) ListVehicles(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockQueryService) ListCustomers(ctx context.Context, nameContains string) ([]domain.Customer, error) {
	args := m.Called(ctx, nameContains)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockQueryService) ListPayments(ctx context.Context, f repository.PaymentFilter) ([]domain.Payment, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockQueryService) GetRentalStatement(ctx context.Context, rentalID int64) (*service.RentalStatement, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalStatement), args.Error(1)
}

func day(s string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
	return t
}
