package service

import (
	"context"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
)

type catalogService struct {
	manufacturerRepo repository.ManufacturerRepository
	vehicleRepo      repository.VehicleRepository
}

func NewCatalogService(manufacturerRepo repository.ManufacturerRepository, vehicleRepo repository.VehicleRepository) CatalogService {
	return &catalogService{
		manufacturerRepo: manufacturerRepo,
		vehicleRepo:      vehicleRepo,
	}
}

func (s *catalogService) CreateManufacturer(ctx context.Context, name string) (*domain.Manufacturer, error) {
	m := &domain.Manufacturer{Name: name}
	if err := s.manufacturerRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	logger.Info("Manufacturer created", "manufacturer_id", m.ID, "name", name)
	return m, nil
}

func (s *catalogService) GetManufacturer(ctx context.Context, id int64) (*domain.Manufacturer, error) {
	return s.manufacturerRepo.GetByID(ctx, id)
}

func (s *catalogService) ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error) {
	return s.manufacturerRepo.List(ctx)
}

func (s *catalogService) UpdateManufacturer(ctx context.Context, m *domain.Manufacturer) error {
	return s.manufacturerRepo.Update(ctx, m)
}

func (s *catalogService) DeleteManufacturer(ctx context.Context, id int64) error {
	return s.manufacturerRepo.Delete(ctx, id)
}

func (s *catalogService) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if v.OdometerKm < 0 {
		return fmt.Errorf("%w: odometer must be non-negative, got %d", domain.ErrInvalidMileage, v.OdometerKm)
	}
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return err
	}
	logger.Info("Vehicle created", "vehicle_id", v.ID, "model", v.Model, "manufacturer_id", v.ManufacturerID)
	return nil
}

func (s *catalogService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	return s.vehicleRepo.Update(ctx, v)
}

func (s *catalogService) DeleteVehicle(ctx context.Context, id int64) error {
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *catalogService) RecordOdometer(ctx context.Context, vehicleID int64, km int) (*domain.Vehicle, error) {
	if km < 0 {
		return nil, fmt.Errorf("%w: odometer must be non-negative, got %d", domain.ErrInvalidMileage, km)
	}
	err := withRetry(ctx, "record odometer", func() error {
		return s.vehicleRepo.UpdateOdometer(ctx, vehicleID, km)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Odometer recorded", "vehicle_id", vehicleID, "odometer_km", km)
	return s.vehicleRepo.GetByID(ctx, vehicleID)
}
