package jobs

import (
	"time"

	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/service"
)

// JobRunner coordinates the scheduled jobs.
type JobRunner struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	emailSvc     service.EmailService
	now          func() time.Time
}

func NewJobRunner(rentalRepo repository.RentalRepository, customerRepo repository.CustomerRepository, emailSvc service.EmailService) *JobRunner {
	return &JobRunner{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		emailSvc:     emailSvc,
		now:          time.Now,
	}
}

// runWithRecovery wraps job execution with panic recovery so a failing job
// never takes the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
