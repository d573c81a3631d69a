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

type paymentService struct {
	paymentRepo    repository.PaymentRepository
	rentalRepo     repository.RentalRepository
	toleranceCents int64
	now            func() time.Time
}

// NewPaymentService builds the reconciler. toleranceCents is how far the
// payment sum may exceed the amount owed; zero rejects any overpayment.
func NewPaymentService(paymentRepo repository.PaymentRepository, rentalRepo repository.RentalRepository, toleranceCents int64) PaymentService {
	return &paymentService{
		paymentRepo:    paymentRepo,
		rentalRepo:     rentalRepo,
		toleranceCents: toleranceCents,
		now:            time.Now,
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, rentalID int64, date time.Time, amountCents int64, method string) (*domain.Payment, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %d", domain.ErrInvalidAmount, amountCents)
	}

	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if date.Before(rt.StartDate) {
		return nil, fmt.Errorf("%w: rental %d starts %s", domain.ErrBeforeRentalStart,
			rentalID, rt.StartDate.Format(billing.DateFormat))
	}

	p := &domain.Payment{
		RentalID:    rentalID,
		PaidOn:      date,
		AmountCents: amountCents,
		Method:      method,
	}
	err = withRetry(ctx, "record payment", func() error {
		return s.paymentRepo.Create(ctx, p, s.toleranceCents)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Payment recorded", "payment_id", p.ID, "rental_id", rentalID, "amount_cents", amountCents)
	return p, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) IsSettled(ctx context.Context, rentalID int64) (bool, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return false, err
	}
	paid, err := s.paymentRepo.SumByRental(ctx, rentalID)
	if err != nil {
		return false, err
	}
	return paid == rt.TotalCents, nil
}

func (s *paymentService) ReversePayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	var counter *domain.Payment
	err := withRetry(ctx, "reverse payment", func() error {
		var err error
		counter, err = s.paymentRepo.Reverse(ctx, paymentID, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Payment reversed",
		"payment_id", paymentID, "reversal_id", counter.ID, "amount_cents", counter.AmountCents)
	return counter, nil
}
