package vehicle

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type Service struct {
	vehicles VehicleRepository
	fuel     FuelRepository
}

func NewService(vehicles VehicleRepository, fuel FuelRepository) *Service {
	return &Service{vehicles: vehicles, fuel: fuel}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateVehicleRequest) (*domain.Vehicle, error) {
	uid := userID
	v := &domain.Vehicle{
		UserID: &uid,
		Name:   req.Name,
		Plate:  req.Plate,
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*VehicleWithFuel, error) {
	v, err := s.vehicles.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entries, err := s.fuel.ListByVehicle(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return &VehicleWithFuel{Vehicle: *v, FuelEntries: entries}, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	if _, err := s.vehicles.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Plate != nil {
		fields["plate"] = *req.Plate
	}
	if len(fields) > 0 {
		if err := s.vehicles.UpdateFields(ctx, userID, id, fields); err != nil {
			return nil, err
		}
	}
	return s.vehicles.GetByID(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.fuel.DeleteByVehicle(ctx, userID, id); err != nil {
		return err
	}
	affected, err := s.vehicles.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFuel records a fuel fill-up against a vehicle the caller owns.
func (s *Service) AddFuel(ctx context.Context, userID, vehicleID int64, req AddFuelRequest) (*domain.FuelEntry, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrValidation
	}
	if req.Liters <= 0 || req.TotalCost < 0 || req.DistanceKM < 0 {
		return nil, ErrValidation
	}

	if _, err := s.vehicles.GetByID(ctx, userID, vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	uid := userID
	entry := &domain.FuelEntry{
		UserID:     &uid,
		VehicleID:  vehicleID,
		Date:       req.Date,
		Liters:     req.Liters,
		TotalCost:  req.TotalCost,
		DistanceKM: req.DistanceKM,
	}
	if err := s.fuel.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) ListFuel(ctx context.Context, userID, vehicleID int64) ([]domain.FuelEntry, error) {
	if _, err := s.vehicles.GetByID(ctx, userID, vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.fuel.ListByVehicle(ctx, userID, vehicleID)
}
