package customer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type Service struct {
	customers CustomerRepository
	visits    VisitRepository
	followUps FollowUpRepository
}

func NewService(customers CustomerRepository, visits VisitRepository, followUps FollowUpRepository) *Service {
	return &Service{customers: customers, visits: visits, followUps: followUps}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateCustomerRequest) (*domain.Customer, error) {
	if !validVisitDays(req.VisitDays) || !validAlerts(req.Alerts) {
		return nil, ErrValidation
	}

	tier := domain.PriceTierStandard
	if req.PriceTier != "" {
		if !validPriceTier(req.PriceTier) {
			return nil, ErrValidation
		}
		tier = domain.PriceTier(req.PriceTier)
	}

	uid := userID
	c := &domain.Customer{
		UserID:    &uid,
		Name:      req.Name,
		Region:    req.Region,
		Phone:     req.Phone,
		Address:   req.Address,
		PriceTier: tier,
		VisitDays: req.VisitDays,
		Alerts:    req.Alerts,
	}
	if c.VisitDays == nil {
		c.VisitDays = []string{}
	}
	if c.Alerts == nil {
		c.Alerts = []string{}
	}

	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Customer, error) {
	return s.customers.List(ctx, userID)
}

func (s *Service) ListForDay(ctx context.Context, userID int64, day string) ([]domain.Customer, error) {
	if !domain.IsValidWeekday(day) {
		return nil, ErrValidation
	}
	return s.customers.ListByVisitDay(ctx, userID, day)
}

func (s *Service) Regions(ctx context.Context, userID int64) ([]string, error) {
	return s.customers.DistinctRegions(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Region != nil {
		fields["region"] = *req.Region
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.PriceTier != nil {
		if !validPriceTier(*req.PriceTier) {
			return nil, ErrValidation
		}
		fields["price_tier"] = *req.PriceTier
	}
	if req.VisitDays != nil {
		if !validVisitDays(*req.VisitDays) {
			return nil, ErrValidation
		}
		fields["visit_days"] = marshalList(*req.VisitDays)
	}
	if req.Alerts != nil {
		if !validAlerts(*req.Alerts) {
			return nil, ErrValidation
		}
		fields["alerts"] = marshalList(*req.Alerts)
	}

	if len(fields) > 0 {
		if err := s.customers.UpdateFields(ctx, userID, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the customer and cascades to its visits and follow-ups.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	affected, err := s.customers.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	if err := s.visits.DeleteByCustomer(ctx, userID, id); err != nil {
		return err
	}
	return s.followUps.DeleteByCustomer(ctx, userID, id)
}

func (s *Service) AlertOptions() []string {
	return domain.AlertOptions
}
