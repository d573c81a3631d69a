package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, vehicle_id, start_date, end_date, return_date,
	start_odometer_km, end_odometer_km, daily_rate_cents, total_cents`

// Create opens a rental. The vehicle row is locked first so two concurrent
// opens for the same vehicle cannot both pass the overlap check, and the
// starting odometer is snapshotted from the same locked row.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var startKm int
	err = tx.QueryRowContext(ctx,
		`SELECT odometer_km FROM vehicles WHERE id = $1 FOR UPDATE`,
		rt.VehicleID).Scan(&startKm)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, rt.VehicleID)
	}
	if err != nil {
		return err
	}

	var clash bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM rentals
			WHERE vehicle_id = $1 AND return_date IS NULL
			  AND start_date < $3 AND $2 < end_date)`,
		rt.VehicleID, rt.StartDate, rt.EndDate).Scan(&clash)
	if err != nil {
		return err
	}
	if clash {
		return fmt.Errorf("%w: vehicle %d between %s and %s",
			domain.ErrVehicleUnavailable, rt.VehicleID,
			rt.StartDate.Format("2006-01-02"), rt.EndDate.Format("2006-01-02"))
	}

	rt.StartOdometerKm = startKm
	err = tx.QueryRowContext(ctx,
		`INSERT INTO rentals (customer_id, vehicle_id, start_date, end_date, start_odometer_km, daily_rate_cents, total_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		rt.CustomerID, rt.VehicleID, rt.StartDate, rt.EndDate,
		rt.StartOdometerKm, rt.DailyRateCents, rt.TotalCents).Scan(&rt.ID)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: customer %d", domain.ErrNotFound, rt.CustomerID)
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CustomerID, &rt.VehicleID, &rt.StartDate, &rt.EndDate, &rt.ReturnDate,
		&rt.StartOdometerKm, &rt.EndOdometerKm, &rt.DailyRateCents, &rt.TotalCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: rental %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE 1=1`
	var args []interface{}
	if f.CustomerID != nil {
		args = append(args, *f.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if f.Open != nil {
		if *f.Open {
			query += " AND return_date IS NULL"
		} else {
			query += " AND return_date IS NOT NULL"
		}
	}
	if f.MinTotalCents != nil {
		args = append(args, *f.MinTotalCents)
		query += fmt.Sprintf(" AND total_cents >= $%d", len(args))
	}
	if f.Settled != nil {
		op := "="
		if !*f.Settled {
			op = "<>"
		}
		query += ` AND (SELECT COALESCE(SUM(p.amount_cents), 0) FROM payments p WHERE p.rental_id = rentals.id) ` + op + ` total_cents`
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rts []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.CustomerID, &rt.VehicleID, &rt.StartDate, &rt.EndDate, &rt.ReturnDate,
			&rt.StartOdometerKm, &rt.EndOdometerKm, &rt.DailyRateCents, &rt.TotalCents); err != nil {
			return nil, err
		}
		rts = append(rts, rt)
	}
	return rts, rows.Err()
}

// Close records the return and moves the vehicle odometer atomically. The
// guarded UPDATE means a rental closes exactly once no matter how many
// callers race.
func (r *rentalRepository) Close(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET return_date = $2, end_odometer_km = $3, total_cents = $4
		 WHERE id = $1 AND return_date IS NULL`,
		rt.ID, rt.ReturnDate, rt.EndOdometerKm, rt.TotalCents)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rentals WHERE id = $1)`, rt.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: rental %d", domain.ErrNotFound, rt.ID)
		}
		return fmt.Errorf("%w: rental %d", domain.ErrAlreadyClosed, rt.ID)
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE vehicles SET odometer_km = $2 WHERE id = $1 AND odometer_km <= $2`,
		rt.VehicleID, *rt.EndOdometerKm)
	if err != nil {
		return err
	}
	n, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: vehicle %d odometer cannot decrease to %d",
			domain.ErrInvalidMileage, rt.VehicleID, *rt.EndOdometerKm)
	}

	return tx.Commit()
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var hasPayments bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM payments WHERE rental_id = $1)`, id).Scan(&hasPayments)
	if err != nil {
		return err
	}
	if hasPayments {
		return fmt.Errorf("%w: rental %d has payments", domain.ErrHasDependents, id)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := requireRow(res, fmt.Errorf("%w: rental %d", domain.ErrNotFound, id)); err != nil {
		return err
	}

	return tx.Commit()
}
