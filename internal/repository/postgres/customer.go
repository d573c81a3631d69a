package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, national_id, email) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.Name, c.NationalID, c.Email).Scan(&c.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateNationalID, c.NationalID)
	}
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, national_id, email FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.NationalID, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: customer %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context, nameContains string) ([]domain.Customer, error) {
	query := `SELECT id, name, national_id, email FROM customers`
	var args []interface{}
	if nameContains != "" {
		args = append(args, "%"+nameContains+"%")
		query += " WHERE name ILIKE $1"
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.NationalID, &c.Email); err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name = $1, national_id = $2, email = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.NationalID, c.Email, c.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateNationalID, c.NationalID)
	}
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Errorf("%w: customer %d", domain.ErrNotFound, c.ID))
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: customer %d still has rentals", domain.ErrHasDependents, id)
	}
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Errorf("%w: customer %d", domain.ErrNotFound, id))
}
