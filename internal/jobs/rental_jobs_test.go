package jobs

import (
	"context"
	"testing"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockRentalRepo struct {
	mock.Mock
}

func (m *mockRentalRepo) Create(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *mockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) List(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) Close(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *mockRentalRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *mockCustomerRepo) List(ctx context.Context, nameContains string) ([]domain.Customer, error) {
	args := m.Called(ctx, nameContains)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *mockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *mockCustomerRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendOverdueReminder(ctx context.Context, toEmail, toName string, rental *domain.Rental) error {
	args := m.Called(ctx, toEmail, toName, rental)
	return args.Error(0)
}

func day(s string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
	return t
}

func TestSendOverdueReminders(t *testing.T) {
	rentalRepo := new(mockRentalRepo)
	customerRepo := new(mockCustomerRepo)
	emailSvc := new(mockEmailService)

	jr := NewJobRunner(rentalRepo, customerRepo, emailSvc)
	jr.now = func() time.Time { return day("2026-03-10") }

	overdue := domain.Rental{ID: 1, CustomerID: 4, EndDate: day("2026-03-08")}
	dueToday := domain.Rental{ID: 2, CustomerID: 5, EndDate: day("2026-03-10")}
	notYet := domain.Rental{ID: 3, CustomerID: 6, EndDate: day("2026-03-12")}

	rentalRepo.On("List", mock.Anything, mock.AnythingOfType("repository.RentalFilter")).
		Return([]domain.Rental{overdue, dueToday, notYet}, nil)
	customerRepo.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.Customer{ID: 4, Name: "Ada Verne", Email: "ada@example.com"}, nil)
	emailSvc.On("SendOverdueReminder", mock.Anything, "ada@example.com", "Ada Verne",
		mock.AnythingOfType("*domain.Rental")).Return(nil)

	jr.SendOverdueReminders()

	// Only the rental past its end date triggers mail. Due-today is not
	// overdue yet.
	emailSvc.AssertNumberOfCalls(t, "SendOverdueReminder", 1)
	customerRepo.AssertNotCalled(t, "GetByID", mock.Anything, int64(5))
	customerRepo.AssertNotCalled(t, "GetByID", mock.Anything, int64(6))
}

func TestSendOverdueRemindersRecoversFromPanic(t *testing.T) {
	rentalRepo := new(mockRentalRepo)
	customerRepo := new(mockCustomerRepo)
	emailSvc := new(mockEmailService)

	jr := NewJobRunner(rentalRepo, customerRepo, emailSvc)
	jr.now = func() time.Time { return day("2026-03-10") }

	// An unregistered expectation makes the mock panic; the runner must
	// swallow it.
	jr.SendOverdueReminders()
}
