package analytics

import (
	"context"

	"fieldcrm/internal/domain"
)

type VisitRepository interface {
	ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.Visit, error)
}

type FollowUpRepository interface {
	ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.FollowUp, error)
}

type CustomerRepository interface {
	List(ctx context.Context, userID int64) ([]domain.Customer, error)
}
