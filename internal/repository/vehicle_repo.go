package repository

import (
	"context"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VehicleRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := tenantScope(r.db.WithContext(ctx), userID).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) List(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	if err := tenantScope(r.db.WithContext(ctx), userID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VehicleRepository) UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error {
	return tenantScope(r.db.WithContext(ctx).Model(&domain.Vehicle{}), userID).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, userID, id int64) (int64, error) {
	tx := tenantScope(r.db.WithContext(ctx), userID).Where("id = ?", id).Delete(&domain.Vehicle{})
	return tx.RowsAffected, tx.Error
}

type FuelRepository struct {
	db *gorm.DB
}

func NewFuelRepository(db *gorm.DB) *FuelRepository {
	return &FuelRepository{db: db}
}

func (r *FuelRepository) Create(ctx context.Context, e *domain.FuelEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *FuelRepository) ListByVehicle(ctx context.Context, userID, vehicleID int64) ([]domain.FuelEntry, error) {
	var out []domain.FuelEntry
	err := tenantScope(r.db.WithContext(ctx), userID).
		Where("vehicle_id = ?", vehicleID).
		Order("date, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FuelRepository) ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.FuelEntry, error) {
	var out []domain.FuelEntry
	err := tenantScope(r.db.WithContext(ctx), userID).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FuelRepository) DeleteByVehicle(ctx context.Context, userID, vehicleID int64) error {
	return tenantScope(r.db.WithContext(ctx), userID).
		Where("vehicle_id = ?", vehicleID).
		Delete(&domain.FuelEntry{}).Error
}
