// internal/repository/order_repository.go
package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/database"
	"github.com/shopkit/orders-backend/internal/models"
)

type OrderRepository struct {
	db *gorm.DB
}

// StatusCount is one row of the orders-per-status aggregate.
type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

// SalesStatistics aggregates paid orders over a period.
type SalesStatistics struct {
	Count    int64           `json:"count"`
	SumTotal decimal.Decimal `json:"sum_total"`
	AvgTotal decimal.Decimal `json:"avg_total"`
	MinTotal decimal.Decimal `json:"min_total"`
	MaxTotal decimal.Decimal `json:"max_total"`
}

// UserSales ranks a user by accumulated paid order totals.
type UserSales struct {
	UserID     int64           `json:"user_id"`
	Name       string          `json:"name"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order and, through the association, any items attached
// via Order.AddItem.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) FindByID(id int64) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByIDWithItems loads the order with its item collection and each item's
// product, which are otherwise fetched lazily.
func (r *OrderRepository) FindByIDWithItems(id int64) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Preload("Items.Product").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// Save persists the order together with its item collection and applies
// orphan removal: items detached through Order.RemoveItem are deleted.
func (r *OrderRepository) Save(order *models.Order) error {
	return database.WithTransaction(r.db, func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{FullSaveAssociations: true})
		if err := session.Save(order).Error; err != nil {
			return err
		}
		for _, item := range order.DetachedItems() {
			if err := tx.Delete(&models.OrderItem{}, item.ID).Error; err != nil {
				return err
			}
		}
		order.ClearDetachedItems()
		return nil
	})
}

// Delete removes the order; its items go with it via ON DELETE CASCADE.
func (r *OrderRepository) Delete(id int64) error {
	return r.db.Delete(&models.Order{}, id).Error
}

// Field-based finders

func (r *OrderRepository) FindByUserID(userID int64) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ?", status).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByUserIDAndStatus(userID int64, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ? AND status = ?", userID, status).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByTotalGreaterThan(total decimal.Decimal) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("total > ?", total).Find(&orders).Error
	return orders, err
}

// Builder queries

func (r *OrderRepository) FindByCreatedBetween(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("created_at BETWEEN ? AND ?", start, end).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindWithItemsByUser(userID int64) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

// SumPaidTotalByUser totals the user's paid orders, zero when there are none.
func (r *OrderRepository) SumPaidTotalByUser(userID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("user_id = ? AND status = ?", userID, models.OrderStatusPaid).
		Scan(&total).Error
	return total, err
}

// Raw SQL queries

func (r *OrderRepository) FindByMonthAndYear(month, year int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Raw(
		"SELECT * FROM orders WHERE EXTRACT(MONTH FROM created_at) = ? AND EXTRACT(YEAR FROM created_at) = ?",
		month, year,
	).Scan(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountByStatus() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Raw("SELECT status, COUNT(*) AS count FROM orders GROUP BY status").Scan(&counts).Error
	return counts, err
}

func (r *OrderRepository) SalesStatistics(start, end time.Time) (*SalesStatistics, error) {
	var stats SalesStatistics
	err := r.db.Raw(
		`SELECT COUNT(*) AS count,
		        COALESCE(SUM(total), 0) AS sum_total,
		        COALESCE(AVG(total), 0) AS avg_total,
		        COALESCE(MIN(total), 0) AS min_total,
		        COALESCE(MAX(total), 0) AS max_total
		 FROM orders WHERE created_at BETWEEN ? AND ? AND status = 'PAID'`,
		start, end,
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *OrderRepository) TopUsersBySales(limit int) ([]UserSales, error) {
	var sales []UserSales
	err := r.db.Raw(
		`SELECT u.id AS user_id, u.name, SUM(o.total) AS total_sales
		 FROM orders o
		 JOIN users u ON o.user_id = u.id
		 WHERE o.status = 'PAID'
		 GROUP BY u.id, u.name
		 ORDER BY total_sales DESC
		 LIMIT ?`,
		limit,
	).Scan(&sales).Error
	return sales, err
}

// Scope executors

func (r *OrderRepository) FindAllScoped(scopes ...func(*gorm.DB) *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Scopes(scopes...).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountScoped(scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Scopes(scopes...).Count(&count).Error
	return count, err
}

func (r *OrderRepository) ExistsScoped(scopes ...func(*gorm.DB) *gorm.DB) (bool, error) {
	count, err := r.CountScoped(scopes...)
	return count > 0, err
}

func (r *OrderRepository) FindPageScoped(limit, offset int, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Scopes(scopes...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Order(order).Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}
