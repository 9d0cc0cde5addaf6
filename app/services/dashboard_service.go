package services

import (
	"database/sql"
	"time"

	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

const (
	dailyTrendDays     = 7
	monthlyTrendMonths = 6
	recentPaymentLimit = 5
)

// DashboardStats is the headline block: headcounts plus collection totals.
type DashboardStats struct {
	Students *models.StudentStats `json:"students"`
	Payments *models.PaymentStats `json:"payments"`
}

// DashboardTrends bundles the daily and monthly collection curves.
type DashboardTrends struct {
	Daily   []models.TrendPoint      `json:"daily"`
	Monthly []models.MonthTrendPoint `json:"monthly"`
}

// DashboardDistributions bundles the current month's method and purpose
// breakdowns.
type DashboardDistributions struct {
	Methods  []models.MethodDistribution  `json:"methods"`
	Purposes []models.PurposeDistribution `json:"purposes"`
}

// DashboardSummary is every aggregate in one response.
type DashboardSummary struct {
	GeneratedAt   time.Time               `json:"generated_at"`
	Stats         *DashboardStats         `json:"stats"`
	Trends        *DashboardTrends        `json:"trends"`
	Distributions *DashboardDistributions `json:"distributions"`
	Recent        []models.RecentPayment  `json:"recent_payments"`
}

// DashboardService computes the dashboard aggregates behind a TTL cache.
// Each block is cached under its own key; figures may lag writes by up to
// the TTL since the cache is never flushed on write, only on expiry.
type DashboardService struct {
	db    *sql.DB
	cache *Cache
}

func NewDashboardService(db *sql.DB, cache *Cache) *DashboardService {
	return &DashboardService{db: db, cache: cache}
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	value, err := s.cache.Remember("dashboard:stats", func() (interface{}, error) {
		students, err := database.GetStudentStats(s.db)
		if err != nil {
			return nil, err
		}
		payments, err := database.GetPaymentStats(s.db)
		if err != nil {
			return nil, err
		}
		return &DashboardStats{Students: students, Payments: payments}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*DashboardStats), nil
}

func (s *DashboardService) Trends() (*DashboardTrends, error) {
	value, err := s.cache.Remember("dashboard:trends", func() (interface{}, error) {
		daily, err := database.GetDailyTrend(s.db, dailyTrendDays)
		if err != nil {
			return nil, err
		}
		monthly, err := database.GetMonthlyTrend(s.db, monthlyTrendMonths)
		if err != nil {
			return nil, err
		}
		return &DashboardTrends{Daily: daily, Monthly: monthly}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*DashboardTrends), nil
}

func (s *DashboardService) Distributions() (*DashboardDistributions, error) {
	value, err := s.cache.Remember("dashboard:distributions", func() (interface{}, error) {
		methods, err := database.GetMethodDistribution(s.db)
		if err != nil {
			return nil, err
		}
		purposes, err := database.GetPurposeDistribution(s.db)
		if err != nil {
			return nil, err
		}
		return &DashboardDistributions{Methods: methods, Purposes: purposes}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*DashboardDistributions), nil
}

func (s *DashboardService) RecentPayments() ([]models.RecentPayment, error) {
	value, err := s.cache.Remember("dashboard:recent", func() (interface{}, error) {
		return database.GetRecentPayments(s.db, recentPaymentLimit)
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.RecentPayment), nil
}

// Summary composes every cached block into one response.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	stats, err := s.Stats()
	if err != nil {
		return nil, err
	}

	trends, err := s.Trends()
	if err != nil {
		return nil, err
	}

	distributions, err := s.Distributions()
	if err != nil {
		return nil, err
	}

	recent, err := s.RecentPayments()
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		GeneratedAt:   time.Now(),
		Stats:         stats,
		Trends:        trends,
		Distributions: distributions,
		Recent:        recent,
	}, nil
}
