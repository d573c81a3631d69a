package service

import (
	"context"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

// queryService composes read-only views from the stores. Nothing in here
// mutates state; each listing is a single store query.
type queryService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
}

func NewQueryService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	paymentRepo repository.PaymentRepository,
) QueryService {
	return &queryService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
	}
}

func (s *queryService) ListRentals(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx, f)
}

func (s *queryService) ListVehicles(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx, f)
}

func (s *queryService) ListCustomers(ctx context.Context, nameContains string) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx, nameContains)
}

func (s *queryService) ListPayments(ctx context.Context, f repository.PaymentFilter) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx, f)
}

func (s *queryService) GetRentalStatement(ctx context.Context, rentalID int64) (*RentalStatement, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	paid, err := s.paymentRepo.SumByRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	return &RentalStatement{
		Rental:    *rt,
		PaidCents: paid,
		Settled:   paid == rt.TotalCents,
	}, nil
}
