package followup

import (
	"context"

	"fieldcrm/internal/domain"
)

type FollowUpRepository interface {
	Create(ctx context.Context, f *domain.FollowUp) error
	GetByID(ctx context.Context, userID, id int64) (*domain.FollowUp, error)
	List(ctx context.Context, userID int64, dueDate string, customerID int64) ([]domain.FollowUp, error)
	UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error
	Delete(ctx context.Context, userID, id int64) (int64, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, userID, id int64) (*domain.Customer, error)
}
