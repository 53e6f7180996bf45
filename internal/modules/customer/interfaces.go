package customer

import (
	"context"

	"fieldcrm/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Customer, error)
	List(ctx context.Context, userID int64) ([]domain.Customer, error)
	ListByVisitDay(ctx context.Context, userID int64, day string) ([]domain.Customer, error)
	DistinctRegions(ctx context.Context, userID int64) ([]string, error)
	UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error
	Delete(ctx context.Context, userID, id int64) (int64, error)
}

type VisitRepository interface {
	DeleteByCustomer(ctx context.Context, userID, customerID int64) error
}

type FollowUpRepository interface {
	DeleteByCustomer(ctx context.Context, userID, customerID int64) error
}
