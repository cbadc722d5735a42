// internal/repository/order_item_repository.go
package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/models"
)

type OrderItemRepository struct {
	db *gorm.DB
}

// ProductSales ranks a product by units sold.
type ProductSales struct {
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// ProductRevenue ranks a product by accumulated item subtotals.
type ProductRevenue struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Revenue   decimal.Decimal `json:"revenue"`
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) Create(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *OrderItemRepository) FindByID(id int64) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderItemRepository) Delete(id int64) error {
	return r.db.Delete(&models.OrderItem{}, id).Error
}

// Field-based finders

func (r *OrderItemRepository) FindByOrderID(orderID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderItemRepository) FindByProductID(productID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("product_id = ?", productID).Find(&items).Error
	return items, err
}

func (r *OrderItemRepository) FindByQuantityGreaterThan(quantity int) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("quantity > ?", quantity).Find(&items).Error
	return items, err
}

// Builder queries

// FindPaidItemsByUser walks item -> order -> user and keeps paid orders only.
func (r *OrderItemRepository) FindPaidItemsByUser(userID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ?", userID, models.OrderStatusPaid).
		Find(&items).Error
	return items, err
}

// TotalQuantityByProduct sums units of the product across all orders, zero
// when it was never ordered.
func (r *OrderItemRepository) TotalQuantityByProduct(productID int64) (int64, error) {
	var total int64
	err := r.db.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID).
		Scan(&total).Error
	return total, err
}

func (r *OrderItemRepository) FindWithRelationsByOrder(orderID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Preload("Product").Preload("Order").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// Raw SQL queries

func (r *OrderItemRepository) FindByOrderRaw(orderID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Raw("SELECT * FROM order_items WHERE order_id = ?", orderID).Scan(&items).Error
	return items, err
}

func (r *OrderItemRepository) TopSellingProducts(limit int) ([]ProductSales, error) {
	var sales []ProductSales
	err := r.db.Raw(
		`SELECT p.id AS product_id, p.name, SUM(oi.quantity) AS total_quantity
		 FROM order_items oi
		 JOIN products p ON oi.product_id = p.id
		 GROUP BY p.id, p.name
		 ORDER BY total_quantity DESC
		 LIMIT ?`,
		limit,
	).Scan(&sales).Error
	return sales, err
}

func (r *OrderItemRepository) RevenueByProduct() ([]ProductRevenue, error) {
	var revenue []ProductRevenue
	err := r.db.Raw(
		`SELECT p.id AS product_id, p.name, SUM(oi.subtotal) AS revenue
		 FROM order_items oi
		 JOIN products p ON oi.product_id = p.id
		 GROUP BY p.id, p.name
		 ORDER BY revenue DESC`,
	).Scan(&revenue).Error
	return revenue, err
}

// Scope executors

func (r *OrderItemRepository) FindAllScoped(scopes ...func(*gorm.DB) *gorm.DB) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Scopes(scopes...).Find(&items).Error
	return items, err
}

func (r *OrderItemRepository) CountScoped(scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Scopes(scopes...).Count(&count).Error
	return count, err
}

func (r *OrderItemRepository) ExistsScoped(scopes ...func(*gorm.DB) *gorm.DB) (bool, error) {
	count, err := r.CountScoped(scopes...)
	return count > 0, err
}
