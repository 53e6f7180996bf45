package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fieldcrm/internal/domain"
)

type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.Visit, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visit), args.Error(1)
}

type MockFuelRepository struct {
	mock.Mock
}

func (m *MockFuelRepository) ListInRange(ctx context.Context, userID int64, start, end string) ([]domain.FuelEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FuelEntry), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context, userID int64) ([]domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func floatPtr(f float64) *float64                      { return &f }
func typePtr(t domain.PaymentType) *domain.PaymentType { return &t }
func strPtr(s string) *string                          { return &s }

func newTestService(visits *MockVisitRepository, fuel *MockFuelRepository, customers *MockCustomerRepository, now time.Time) *Service {
	s := NewService(visits, fuel, customers)
	s.now = func() time.Time { return now }
	return s
}

func TestBuildPeriodReport_CountsAndRates(t *testing.T) {
	visits := new(MockVisitRepository)
	fuel := new(MockFuelRepository)
	visits.On("ListInRange", mock.Anything, int64(1), "2024-01-01", "2024-01-07").Return([]domain.Visit{
		{Date: "2024-01-02", Status: domain.VisitVisited, PaymentCollected: true,
			PaymentAmount: floatPtr(100), PaymentType: typePtr(domain.PaymentCash)},
		{Date: "2024-01-02", Status: domain.VisitNotVisited},
		{Date: "2024-01-04", Completed: true, PaymentCollected: true,
			PaymentAmount: floatPtr(50), PaymentType: typePtr(domain.PaymentCard)},
		{Date: "2024-01-04", Status: domain.VisitPending},
	}, nil)
	fuel.On("ListInRange", mock.Anything, int64(1), "2024-01-01", "2024-01-07").Return([]domain.FuelEntry{
		{Date: "2024-01-03", TotalCost: 500, DistanceKM: 120},
		{Date: "2024-01-06", TotalCost: 300, DistanceKM: 80},
	}, nil)

	s := newTestService(visits, fuel, new(MockCustomerRepository), time.Now())
	r, err := s.BuildPeriodReport(context.Background(), 1, "weekly", "2024-01-01", "2024-01-07")
	assert.NoError(t, err)

	assert.Equal(t, 4, r.TotalVisits)
	// the legacy completed row reconciles to visited
	assert.Equal(t, 2, r.VisitedCount)
	assert.Equal(t, 1, r.NotVisitedCount)
	assert.Equal(t, 1, r.PendingCount)
	assert.Equal(t, 50.0, r.VisitRate)

	assert.Equal(t, 150.0, r.TotalPayment)
	assert.Equal(t, 100.0, r.PaymentsByType["Cash"])
	assert.Equal(t, 50.0, r.PaymentsByType["Card"])

	// two distinct visit dates
	assert.Equal(t, 2, r.WorkingDays)
	assert.Equal(t, 2.0, r.AvgVisitsPerDay)
	assert.Equal(t, 75.0, r.AvgPaymentPerDay)

	assert.Equal(t, 200.0, r.TotalDistanceKM)
	assert.Equal(t, 800.0, r.TotalFuelCost)
}

func TestBuildPeriodReport_DailyRowsAreDenseAndStatusKeyed(t *testing.T) {
	visits := new(MockVisitRepository)
	fuel := new(MockFuelRepository)
	visits.On("ListInRange", mock.Anything, int64(1), "2024-01-01", "2024-01-03").Return([]domain.Visit{
		{Date: "2024-01-02", Status: domain.VisitVisited, PaymentCollected: true, PaymentAmount: floatPtr(40)},
		{Date: "2024-01-02", Status: domain.VisitNotVisited},
	}, nil)
	fuel.On("ListInRange", mock.Anything, int64(1), "2024-01-01", "2024-01-03").Return([]domain.FuelEntry{}, nil)

	s := newTestService(visits, fuel, new(MockCustomerRepository), time.Now())
	r, err := s.BuildPeriodReport(context.Background(), 1, "weekly", "2024-01-01", "2024-01-03")
	assert.NoError(t, err)

	assert.Len(t, r.DailyRows, 3)
	assert.Equal(t, "Mon", r.DailyRows[0].Weekday)
	assert.Equal(t, 0, r.DailyRows[0].Visited)
	assert.Equal(t, 1, r.DailyRows[1].Visited)
	assert.Equal(t, 1, r.DailyRows[1].NotVisited)
	assert.Equal(t, 40.0, r.DailyRows[1].Payment)
	assert.Equal(t, 0, r.DailyRows[2].Visited)
}

func TestBuildPeriodReport_EmptyWindowDegradesToZero(t *testing.T) {
	visits := new(MockVisitRepository)
	fuel := new(MockFuelRepository)
	visits.On("ListInRange", mock.Anything, int64(1), "2024-01-01", "2024-01-02").Return([]domain.Visit{}, nil)
	fuel.On("ListInRange", mock.Anything, int64(1), "2024-01-01", "2024-01-02").Return([]domain.FuelEntry{}, nil)

	s := newTestService(visits, fuel, new(MockCustomerRepository), time.Now())
	r, err := s.BuildPeriodReport(context.Background(), 1, "weekly", "2024-01-01", "2024-01-02")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, r.VisitRate)
	assert.Equal(t, 0, r.WorkingDays)
	assert.Equal(t, 0.0, r.AvgVisitsPerDay)
	assert.Equal(t, 0.0, r.TotalFuelCost)
}

func TestBuildPeriodReport_InvalidBounds(t *testing.T) {
	s := newTestService(new(MockVisitRepository), new(MockFuelRepository), new(MockCustomerRepository), time.Now())
	_, err := s.BuildPeriodReport(context.Background(), 1, "weekly", "bad-date", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildDailyReport_JoinsScheduledCustomersWithVisits(t *testing.T) {
	visits := new(MockVisitRepository)
	customers := new(MockCustomerRepository)
	visits.On("ListInRange", mock.Anything, int64(1), "2024-01-02", "2024-01-02").Return([]domain.Visit{
		{CustomerID: 3, Date: "2024-01-02", Status: domain.VisitVisited,
			PaymentCollected: true, PaymentAmount: floatPtr(90), Note: strPtr("paid in full")},
	}, nil)
	customers.On("List", mock.Anything, int64(1)).Return([]domain.Customer{
		{ID: 3, Name: "Market A", Region: "North", VisitDays: []string{"Tuesday"}},
		{ID: 4, Name: "Market B", Region: "South", VisitDays: []string{"Tuesday", "Friday"}},
		{ID: 5, Name: "Market C", Region: "East", VisitDays: []string{"Monday"}},
	}, nil)

	s := newTestService(visits, new(MockFuelRepository), customers, time.Now())
	r, err := s.BuildDailyReport(context.Background(), 1, "Tuesday", "2024-01-02")
	assert.NoError(t, err)

	// Market C is not scheduled for Tuesday
	assert.Len(t, r.Rows, 2)
	assert.Equal(t, "Market A", r.Rows[0].CustomerName)
	assert.Equal(t, "North", r.Rows[0].Region)
	assert.Equal(t, "visited", r.Rows[0].Status)
	assert.Equal(t, 90.0, r.Rows[0].PaymentAmount)
	assert.Equal(t, "paid in full", r.Rows[0].Note)

	// scheduled but no visit row yet
	assert.Equal(t, "Market B", r.Rows[1].CustomerName)
	assert.Equal(t, "pending", r.Rows[1].Status)

	assert.Equal(t, 90.0, r.Total)
}

func TestBuildDailyReport_InvalidDate(t *testing.T) {
	s := newTestService(new(MockVisitRepository), new(MockFuelRepository), new(MockCustomerRepository), time.Now())
	_, err := s.BuildDailyReport(context.Background(), 1, "Tuesday", "02.01.2024")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildDailyReport_UnknownWeekdayRejected(t *testing.T) {
	s := newTestService(new(MockVisitRepository), new(MockFuelRepository), new(MockCustomerRepository), time.Now())
	_, err := s.BuildDailyReport(context.Background(), 1, "Caturday", "2024-01-02")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRenderPeriodPDF_ProducesDocument(t *testing.T) {
	r := &PeriodReport{
		Period:         "weekly",
		StartDate:      "2024-01-01",
		EndDate:        "2024-01-07",
		TotalVisits:    3,
		VisitedCount:   2,
		PaymentsByType: map[string]float64{"Cash": 100},
		DailyRows: []DailyRow{
			{Date: "2024-01-01", Weekday: "Mon", Visited: 1, Payment: 100},
		},
	}

	data, err := RenderPeriodPDF(r)
	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderPeriodExcel_ProducesWorkbook(t *testing.T) {
	r := &PeriodReport{
		Period:         "monthly",
		StartDate:      "2024-01-01",
		EndDate:        "2024-01-31",
		PaymentsByType: map[string]float64{},
		DailyRows:      []DailyRow{{Date: "2024-01-01", Weekday: "Mon"}},
	}

	data, err := RenderPeriodExcel(r)
	assert.NoError(t, err)
	// xlsx is a zip container
	assert.Equal(t, "PK", string(data[:2]))
}
