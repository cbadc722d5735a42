// internal/repository/product_repository.go
package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/models"
)

type ProductRepository struct {
	db *gorm.DB
}

// PriceStatistics aggregates prices over a range of the catalogue.
type PriceStatistics struct {
	AvgPrice decimal.Decimal `json:"avg_price"`
	MinPrice decimal.Decimal `json:"min_price"`
	MaxPrice decimal.Decimal `json:"max_price"`
	Count    int64           `json:"count"`
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) FindByID(id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes the product; dependent order items and reviews are deleted
// by ON DELETE CASCADE.
func (r *ProductRepository) Delete(id int64) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// Field-based finders

func (r *ProductRepository) FindByNameContaining(name string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("name ILIKE ?", "%"+name+"%").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByStockAtMost(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock <= ?", threshold).Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByPriceBetween(min, max decimal.Decimal) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("price BETWEEN ? AND ?", min, max).Find(&products).Error
	return products, err
}

// Builder queries

func (r *ProductRepository) FindAvailable() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock > 0").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindMoreExpensiveThan(price decimal.Decimal) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("price > ?", price).Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindAllByPriceDesc() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("price DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) CountAvailable() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("stock > 0").Count(&count).Error
	return count, err
}

// Raw SQL queries

func (r *ProductRepository) FindLowStockRaw(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Raw(
		"SELECT * FROM products WHERE stock <= ? ORDER BY stock ASC",
		threshold,
	).Scan(&products).Error
	return products, err
}

// TotalInventoryValue is the sum of price x stock across the catalogue,
// zero when the table is empty.
func (r *ProductRepository) TotalInventoryValue() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Raw("SELECT COALESCE(SUM(price * stock), 0) FROM products").Scan(&total).Error
	return total, err
}

func (r *ProductRepository) PriceStatistics(min, max decimal.Decimal) (*PriceStatistics, error) {
	var stats PriceStatistics
	err := r.db.Raw(
		`SELECT COALESCE(AVG(price), 0) AS avg_price,
		        COALESCE(MIN(price), 0) AS min_price,
		        COALESCE(MAX(price), 0) AS max_price,
		        COUNT(*) AS count
		 FROM products WHERE price BETWEEN ? AND ?`,
		min, max,
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ProductRepository) SearchByNameFullText(term string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Raw(
		"SELECT * FROM products WHERE to_tsvector('english', name) @@ plainto_tsquery('english', ?)",
		term,
	).Scan(&products).Error
	return products, err
}

// Scope executors

func (r *ProductRepository) FindAllScoped(scopes ...func(*gorm.DB) *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Scopes(scopes...).Find(&products).Error
	return products, err
}

func (r *ProductRepository) CountScoped(scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Scopes(scopes...).Count(&count).Error
	return count, err
}

func (r *ProductRepository) ExistsScoped(scopes ...func(*gorm.DB) *gorm.DB) (bool, error) {
	count, err := r.CountScoped(scopes...)
	return count > 0, err
}

func (r *ProductRepository) FindPageScoped(limit, offset int, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Scopes(scopes...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Order(order).Limit(limit).Offset(offset).Find(&products).Error
	return products, total, err
}
