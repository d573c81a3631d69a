package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"

	"github.com/lib/pq"
)

type manufacturerRepository struct {
	db *sql.DB
}

func NewManufacturerRepository(db *sql.DB) repository.ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(ctx context.Context, m *domain.Manufacturer) error {
	query := `INSERT INTO manufacturers (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.Name).Scan(&m.ID)
}

func (r *manufacturerRepository) GetByID(ctx context.Context, id int64) (*domain.Manufacturer, error) {
	m := &domain.Manufacturer{}
	query := `SELECT id, name FROM manufacturers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: manufacturer %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *manufacturerRepository) List(ctx context.Context) ([]domain.Manufacturer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM manufacturers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms []domain.Manufacturer
	for rows.Next() {
		var m domain.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, rows.Err()
}

func (r *manufacturerRepository) Update(ctx context.Context, m *domain.Manufacturer) error {
	res, err := r.db.ExecContext(ctx, `UPDATE manufacturers SET name = $1 WHERE id = $2`, m.Name, m.ID)
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Errorf("%w: manufacturer %d", domain.ErrNotFound, m.ID))
}

func (r *manufacturerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM manufacturers WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: manufacturer %d still has vehicles", domain.ErrHasDependents, id)
	}
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Errorf("%w: manufacturer %d", domain.ErrNotFound, id))
}

// requireRow turns a zero-row update or delete into the given error.
func requireRow(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
