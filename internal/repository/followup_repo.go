package repository

import (
	"context"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type FollowUpRepository struct {
	db *gorm.DB
}

func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{db: db}
}

func (r *FollowUpRepository) Create(ctx context.Context, f *domain.FollowUp) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FollowUpRepository) GetByID(ctx context.Context, userID, id int64) (*domain.FollowUp, error) {
	var f domain.FollowUp
	if err := tenantScope(r.db.WithContext(ctx), userID).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FollowUpRepository) List(ctx context.Context, userID int64, dueDate string, customerID int64) ([]domain.FollowUp, error) {
	q := tenantScope(r.db.WithContext(ctx), userID)
	if dueDate != "" {
		q = q.Where("due_date = ?", dueDate)
	}
	if customerID != 0 {
		q = q.Where("customer_id = ?", customerID)
	}
	var out []domain.FollowUp
	if err := q.Order("due_date, id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FollowUpRepository) ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.FollowUp, error) {
	var out []domain.FollowUp
	err := tenantScope(r.db.WithContext(ctx), userID).
		Where("due_date BETWEEN ? AND ?", start, end).
		Order("due_date, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FollowUpRepository) UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error {
	return tenantScope(r.db.WithContext(ctx).Model(&domain.FollowUp{}), userID).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *FollowUpRepository) Delete(ctx context.Context, userID, id int64) (int64, error) {
	tx := tenantScope(r.db.WithContext(ctx), userID).Where("id = ?", id).Delete(&domain.FollowUp{})
	return tx.RowsAffected, tx.Error
}

func (r *FollowUpRepository) DeleteByCustomer(ctx context.Context, userID, customerID int64) error {
	return tenantScope(r.db.WithContext(ctx), userID).
		Where("customer_id = ?", customerID).
		Delete(&domain.FollowUp{}).Error
}
