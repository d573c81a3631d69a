package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, rental_id, paid_on, amount_cents, method, reversal_of`

// Create appends a payment. The rental row is locked before summing existing
// payments so two concurrent payments cannot both pass the overpayment check
// against a stale sum.
func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment, toleranceCents int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var startDate time.Time
	var totalCents int64
	err = tx.QueryRowContext(ctx,
		`SELECT start_date, total_cents FROM rentals WHERE id = $1 FOR UPDATE`,
		p.RentalID).Scan(&startDate, &totalCents)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: rental %d", domain.ErrNotFound, p.RentalID)
	}
	if err != nil {
		return err
	}

	if p.PaidOn.Before(startDate) {
		return fmt.Errorf("%w: rental %d starts %s", domain.ErrBeforeRentalStart,
			p.RentalID, startDate.Format("2006-01-02"))
	}

	var paid int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE rental_id = $1`,
		p.RentalID).Scan(&paid)
	if err != nil {
		return err
	}
	if paid+p.AmountCents > totalCents+toleranceCents {
		return fmt.Errorf("%w: rental %d owes %d, already paid %d, cannot accept %d",
			domain.ErrOverpayment, p.RentalID, totalCents, paid, p.AmountCents)
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO payments (rental_id, paid_on, amount_cents, method)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		p.RentalID, p.PaidOn, p.AmountCents, p.Method).Scan(&p.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.RentalID, &p.PaidOn, &p.AmountCents, &p.Method, &p.ReversalOf)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) List(ctx context.Context, f repository.PaymentFilter) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`
	var args []interface{}
	if f.RentalID != nil {
		args = append(args, *f.RentalID)
		query += " WHERE rental_id = $1"
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.PaidOn, &p.AmountCents, &p.Method, &p.ReversalOf); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, rows.Err()
}

func (r *paymentRepository) SumByRental(ctx context.Context, rentalID int64) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE rental_id = $1`,
		rentalID).Scan(&sum)
	return sum, err
}

// Reverse appends a counter-entry with the negated amount. History is never
// deleted: the original stays, the new row points back at it via reversal_of.
func (r *paymentRepository) Reverse(ctx context.Context, paymentID int64, on time.Time) (*domain.Payment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	orig := &domain.Payment{}
	err = tx.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`,
		paymentID).Scan(&orig.ID, &orig.RentalID, &orig.PaidOn, &orig.AmountCents, &orig.Method, &orig.ReversalOf)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %d", domain.ErrNotFound, paymentID)
	}
	if err != nil {
		return nil, err
	}
	if orig.Reversal() {
		return nil, fmt.Errorf("%w: payment %d is itself a reversal", domain.ErrNotFound, paymentID)
	}

	var reversed bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM payments WHERE reversal_of = $1)`, paymentID).Scan(&reversed)
	if err != nil {
		return nil, err
	}
	if reversed {
		return nil, fmt.Errorf("%w: payment %d already reversed", domain.ErrConflict, paymentID)
	}

	counter := &domain.Payment{
		RentalID:    orig.RentalID,
		PaidOn:      on,
		AmountCents: -orig.AmountCents,
		Method:      orig.Method,
		ReversalOf:  &orig.ID,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO payments (rental_id, paid_on, amount_cents, method, reversal_of)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		counter.RentalID, counter.PaidOn, counter.AmountCents, counter.Method, counter.ReversalOf).Scan(&counter.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return counter, nil
}
