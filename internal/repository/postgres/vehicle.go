package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (model, year, odometer_km, manufacturer_id)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, v.Model, v.Year, v.OdometerKm, v.ManufacturerID).Scan(&v.ID)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: manufacturer %d", domain.ErrNotFound, v.ManufacturerID)
	}
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, model, year, odometer_km, manufacturer_id FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Model, &v.Year, &v.OdometerKm, &v.ManufacturerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, error) {
	query := `SELECT id, model, year, odometer_km, manufacturer_id FROM vehicles WHERE 1=1`
	var args []interface{}
	if f.ManufacturerID != nil {
		args = append(args, *f.ManufacturerID)
		query += fmt.Sprintf(" AND manufacturer_id = $%d", len(args))
	}
	if f.Year != nil {
		args = append(args, *f.Year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	if f.MinOdometerKm != nil {
		args = append(args, *f.MinOdometerKm)
		query += fmt.Sprintf(" AND odometer_km >= $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vs []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Model, &v.Year, &v.OdometerKm, &v.ManufacturerID); err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	// The odometer is excluded on purpose: it only moves through
	// UpdateOdometer or a rental close.
	query := `UPDATE vehicles SET model = $1, year = $2, manufacturer_id = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, v.Model, v.Year, v.ManufacturerID, v.ID)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: manufacturer %d", domain.ErrNotFound, v.ManufacturerID)
	}
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, v.ID))
}

func (r *vehicleRepository) UpdateOdometer(ctx context.Context, id int64, km int) error {
	// The guard keeps the reading monotone even under concurrent writers.
	query := `UPDATE vehicles SET odometer_km = $1 WHERE id = $2 AND odometer_km <= $1`
	res, err := r.db.ExecContext(ctx, query, km, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM vehicles WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, id)
		}
		return fmt.Errorf("%w: vehicle %d odometer cannot decrease to %d", domain.ErrInvalidMileage, id, km)
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: vehicle %d still has rentals", domain.ErrHasDependents, id)
	}
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, id))
}
