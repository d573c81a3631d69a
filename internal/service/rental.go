package service

import (
	"context"
	"fmt"
	"time"

	"fleetrent-backend/internal/billing"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
	}
}

func (s *rentalService) OpenRental(ctx context.Context, customerID, vehicleID int64, start, end time.Time, dailyRateCents int64) (*domain.Rental, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end %s must be after start %s",
			domain.ErrInvalidInterval, end.Format(billing.DateFormat), start.Format(billing.DateFormat))
	}
	if dailyRateCents <= 0 {
		return nil, fmt.Errorf("%w: daily rate must be positive, got %d", domain.ErrInvalidAmount, dailyRateCents)
	}

	// The vehicle is re-checked (and locked) inside the insert transaction;
	// the customer lookup only needs to exist, its fields are not copied.
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	rt := &domain.Rental{
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		StartDate:      start,
		EndDate:        end,
		DailyRateCents: dailyRateCents,
		TotalCents:     billing.Total(start, end, dailyRateCents),
	}

	err := withRetry(ctx, "open rental", func() error {
		return s.rentalRepo.Create(ctx, rt)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Rental opened",
		"rental_id", rt.ID, "customer_id", customerID, "vehicle_id", vehicleID,
		"total_cents", rt.TotalCents)
	return rt, nil
}

func (s *rentalService) CloseRental(ctx context.Context, rentalID int64, returnDate time.Time, endOdometerKm int) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !rt.Open() {
		return nil, fmt.Errorf("%w: rental %d", domain.ErrAlreadyClosed, rentalID)
	}
	if returnDate.Before(rt.StartDate) {
		return nil, fmt.Errorf("%w: return date %s before start %s", domain.ErrInvalidReturn,
			returnDate.Format(billing.DateFormat), rt.StartDate.Format(billing.DateFormat))
	}
	if endOdometerKm < rt.StartOdometerKm {
		return nil, fmt.Errorf("%w: ending odometer %d below starting %d",
			domain.ErrInvalidReturn, endOdometerKm, rt.StartOdometerKm)
	}

	// The actual return date supersedes the planned end date for billing.
	rt.ReturnDate = &returnDate
	rt.EndOdometerKm = &endOdometerKm
	rt.TotalCents = billing.Total(rt.StartDate, returnDate, rt.DailyRateCents)

	err = withRetry(ctx, "close rental", func() error {
		return s.rentalRepo.Close(ctx, rt)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Rental closed",
		"rental_id", rt.ID, "return_date", returnDate.Format(billing.DateFormat),
		"final_total_cents", rt.TotalCents)
	return rt, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) AmountOwed(ctx context.Context, rentalID int64) (int64, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return 0, err
	}
	return rt.TotalCents, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int64) error {
	err := withRetry(ctx, "delete rental", func() error {
		return s.rentalRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	logger.Info("Rental deleted", "rental_id", id)
	return nil
}
