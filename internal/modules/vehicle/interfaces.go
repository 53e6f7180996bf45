package vehicle

import (
	"context"

	"fieldcrm/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, userID int64) ([]domain.Vehicle, error)
	UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error
	Delete(ctx context.Context, userID, id int64) (int64, error)
}

type FuelRepository interface {
	Create(ctx context.Context, e *domain.FuelEntry) error
	ListByVehicle(ctx context.Context, userID, vehicleID int64) ([]domain.FuelEntry, error)
	DeleteByVehicle(ctx context.Context, userID, vehicleID int64) error
}
