package visit

import (
	"context"

	"fieldcrm/internal/domain"
)

type VisitRepository interface {
	Create(ctx context.Context, v *domain.Visit) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Visit, error)
	FindByCustomerAndDate(ctx context.Context, userID, customerID int64, date string) (*domain.Visit, error)
	List(ctx context.Context, userID int64, date string, customerID int64) ([]domain.Visit, error)
	UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error
}

type CustomerRepository interface {
	GetByID(ctx context.Context, userID, id int64) (*domain.Customer, error)
}
