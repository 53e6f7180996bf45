package repository

import (
	"context"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Customer, error) {
	var c domain.Customer
	if err := tenantScope(r.db.WithContext(ctx), userID).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, userID int64) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := tenantScope(r.db.WithContext(ctx), userID).Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListByVisitDay returns customers whose visit_days contain the weekday name.
// visit_days is serialized JSON, so the day filter runs in memory.
func (r *CustomerRepository) ListByVisitDay(ctx context.Context, userID int64, day string) ([]domain.Customer, error) {
	all, err := r.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(all))
	for _, c := range all {
		for _, d := range c.VisitDays {
			if d == day {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *CustomerRepository) DistinctRegions(ctx context.Context, userID int64) ([]string, error) {
	var regions []string
	err := tenantScope(r.db.WithContext(ctx).Model(&domain.Customer{}), userID).
		Distinct("region").
		Where("region <> ''").
		Order("region").
		Pluck("region", &regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *CustomerRepository) UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error {
	return tenantScope(r.db.WithContext(ctx).Model(&domain.Customer{}), userID).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, userID, id int64) (int64, error) {
	tx := tenantScope(r.db.WithContext(ctx), userID).Where("id = ?", id).Delete(&domain.Customer{})
	return tx.RowsAffected, tx.Error
}
