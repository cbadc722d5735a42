// internal/services/stats_service.go
package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopkit/orders-backend/internal/repository"
)

// StatsService fronts the aggregate reporting queries of the order, item,
// review, and product repositories.
type StatsService struct {
	orders   *repository.OrderRepository
	items    *repository.OrderItemRepository
	reviews  *repository.ProductReviewRepository
	products *repository.ProductRepository
}

func NewStatsService(
	orders *repository.OrderRepository,
	items *repository.OrderItemRepository,
	reviews *repository.ProductReviewRepository,
	products *repository.ProductRepository,
) *StatsService {
	return &StatsService{
		orders:   orders,
		items:    items,
		reviews:  reviews,
		products: products,
	}
}

func (s *StatsService) OrderCountByStatus() ([]repository.StatusCount, error) {
	return s.orders.CountByStatus()
}

func (s *StatsService) Sales(start, end time.Time) (*repository.SalesStatistics, error) {
	return s.orders.SalesStatistics(start, end)
}

func (s *StatsService) TopUsersBySales(limit int) ([]repository.UserSales, error) {
	return s.orders.TopUsersBySales(limit)
}

func (s *StatsService) UserPaidTotal(userID int64) (decimal.Decimal, error) {
	return s.orders.SumPaidTotalByUser(userID)
}

func (s *StatsService) TopSellingProducts(limit int) ([]repository.ProductSales, error) {
	return s.items.TopSellingProducts(limit)
}

func (s *StatsService) RevenueByProduct() ([]repository.ProductRevenue, error) {
	return s.items.RevenueByProduct()
}

func (s *StatsService) TopRatedProducts(limit int) ([]repository.ProductRating, error) {
	return s.reviews.TopRatedProducts(limit)
}

func (s *StatsService) InventoryValue() (decimal.Decimal, error) {
	return s.products.TotalInventoryValue()
}

func (s *StatsService) PriceStatistics(min, max decimal.Decimal) (*repository.PriceStatistics, error) {
	return s.products.PriceStatistics(min, max)
}
