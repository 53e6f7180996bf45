package repository

import (
	"context"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VisitRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Visit, error) {
	var v domain.Visit
	if err := tenantScope(r.db.WithContext(ctx), userID).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VisitRepository) FindByCustomerAndDate(ctx context.Context, userID, customerID int64, date string) (*domain.Visit, error) {
	var v domain.Visit
	err := tenantScope(r.db.WithContext(ctx), userID).
		Where("customer_id = ? AND date = ?", customerID, date).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VisitRepository) List(ctx context.Context, userID int64, date string, customerID int64) ([]domain.Visit, error) {
	q := tenantScope(r.db.WithContext(ctx), userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	if customerID != 0 {
		q = q.Where("customer_id = ?", customerID)
	}
	var out []domain.Visit
	if err := q.Order("date, id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VisitRepository) ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.Visit, error) {
	var out []domain.Visit
	err := tenantScope(r.db.WithContext(ctx), userID).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VisitRepository) UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error {
	return tenantScope(r.db.WithContext(ctx).Model(&domain.Visit{}), userID).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *VisitRepository) DeleteByCustomer(ctx context.Context, userID, customerID int64) error {
	return tenantScope(r.db.WithContext(ctx), userID).
		Where("customer_id = ?", customerID).
		Delete(&domain.Visit{}).Error
}
