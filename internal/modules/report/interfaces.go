package report

import (
	"context"

	"fieldcrm/internal/domain"
)

type VisitRepository interface {
	ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.Visit, error)
}

type FuelRepository interface {
	ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.FuelEntry, error)
}

type CustomerRepository interface {
	List(ctx context.Context, userID int64) ([]domain.Customer, error)
}
