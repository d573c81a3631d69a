package postgres_test

import (
	"context"
	"testing"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCustomerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		c := &domain.Customer{Name: "Ada Verne", NationalID: "X1234567", Email: "ada@example.com"}

		mock.ExpectQuery("INSERT INTO customers").
			WithArgs(c.Name, c.NationalID, c.Email).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		err := repo.Create(ctx, c)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), c.ID)
	})

	t.Run("Duplicate national id", func(t *testing.T) {
		c := &domain.Customer{Name: "Ada Verne", NationalID: "X1234567", Email: "ada@example.com"}

		mock.ExpectQuery("INSERT INTO customers").
			WithArgs(c.Name, c.NationalID, c.Email).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, c)
		assert.ErrorIs(t, err, domain.ErrDuplicateNationalID)
	})
}

func TestCustomerRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Name filter is case-insensitive containment", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "national_id", "email"}).
			AddRow(4, "Ada Verne", "X1234567", "ada@example.com")

		mock.ExpectQuery("SELECT (.+) FROM customers WHERE name ILIKE").
			WithArgs("%verne%").
			WillReturnRows(rows)

		customers, err := repo.List(ctx, "verne")
		assert.NoError(t, err)
		assert.Len(t, customers, 1)
		assert.Equal(t, "Ada Verne", customers[0].Name)
	})
}

func TestVehicleRepository_UpdateOdometer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET odometer_km").
			WithArgs(50500, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateOdometer(ctx, 2, 50500)
		assert.NoError(t, err)
	})

	t.Run("Reading below current is rejected", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET odometer_km").
			WithArgs(100, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.UpdateOdometer(ctx, 2, 100)
		assert.ErrorIs(t, err, domain.ErrInvalidMileage)
	})
}
