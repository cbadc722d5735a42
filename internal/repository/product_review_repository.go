// internal/repository/product_review_repository.go
package repository

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/models"
)

type ProductReviewRepository struct {
	db *gorm.DB
}

// ReviewStatistics aggregates ratings for one product.
type ReviewStatistics struct {
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avg_rating"`
	MinRating int     `json:"min_rating"`
	MaxRating int     `json:"max_rating"`
}

// ProductRating ranks a product by its average rating.
type ProductRating struct {
	ProductID   int64   `json:"product_id"`
	Name        string  `json:"name"`
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

func NewProductReviewRepository(db *gorm.DB) *ProductReviewRepository {
	return &ProductReviewRepository{db: db}
}

// Create inserts the review. A second review for the same (user, product)
// pair fails on the composite primary key.
func (r *ProductReviewRepository) Create(review *models.ProductReview) error {
	return r.db.Create(review).Error
}

func (r *ProductReviewRepository) Update(review *models.ProductReview) error {
	return r.db.Save(review).Error
}

func (r *ProductReviewRepository) Delete(userID, productID int64) error {
	return r.db.Delete(&models.ProductReview{UserID: userID, ProductID: productID}).Error
}

// Field-based finders

func (r *ProductReviewRepository) FindByUserID(userID int64) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.Where("user_id = ?", userID).Find(&reviews).Error
	return reviews, err
}

func (r *ProductReviewRepository) FindByProductID(productID int64) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.Where("product_id = ?", productID).Find(&reviews).Error
	return reviews, err
}

func (r *ProductReviewRepository) FindByKey(userID, productID int64) (*models.ProductReview, error) {
	var review models.ProductReview
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ProductReviewRepository) ExistsByKey(userID, productID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProductReview{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProductReviewRepository) FindByRatingAtLeast(minRating int) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.Where("rating >= ?", minRating).Find(&reviews).Error
	return reviews, err
}

// Builder queries

func (r *ProductReviewRepository) FindHighRated(productID int64, minRating int) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.Where("product_id = ? AND rating >= ?", productID, minRating).Find(&reviews).Error
	return reviews, err
}

// AverageRating reports the mean rating for the product; ok is false when it
// has no reviews.
func (r *ProductReviewRepository) AverageRating(productID int64) (float64, bool, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&models.ProductReview{}).
		Select("AVG(rating)").
		Where("product_id = ?", productID).
		Scan(&avg).Error
	if err != nil {
		return 0, false, err
	}
	return avg.Float64, avg.Valid, nil
}

func (r *ProductReviewRepository) FindWithRelationsByProduct(productID int64) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.Preload("User").Preload("Product").
		Where("product_id = ?", productID).
		Find(&reviews).Error
	return reviews, err
}

// Raw SQL queries

func (r *ProductReviewRepository) FindByProductRaw(productID int64) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.Raw("SELECT * FROM product_reviews WHERE product_id = ?", productID).Scan(&reviews).Error
	return reviews, err
}

func (r *ProductReviewRepository) Statistics(productID int64) (*ReviewStatistics, error) {
	var stats ReviewStatistics
	err := r.db.Raw(
		`SELECT COUNT(*) AS count,
		        COALESCE(AVG(rating), 0) AS avg_rating,
		        COALESCE(MIN(rating), 0) AS min_rating,
		        COALESCE(MAX(rating), 0) AS max_rating
		 FROM product_reviews WHERE product_id = ?`,
		productID,
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ProductReviewRepository) TopRatedProducts(limit int) ([]ProductRating, error) {
	var ratings []ProductRating
	err := r.db.Raw(
		`SELECT p.id AS product_id, p.name, AVG(pr.rating) AS avg_rating, COUNT(*) AS review_count
		 FROM product_reviews pr
		 JOIN products p ON pr.product_id = p.id
		 GROUP BY p.id, p.name
		 ORDER BY avg_rating DESC, review_count DESC
		 LIMIT ?`,
		limit,
	).Scan(&ratings).Error
	return ratings, err
}

// Scope executors

func (r *ProductReviewRepository) FindAllScoped(scopes ...func(*gorm.DB) *gorm.DB) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.Scopes(scopes...).Find(&reviews).Error
	return reviews, err
}

func (r *ProductReviewRepository) CountScoped(scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductReview{}).Scopes(scopes...).Count(&count).Error
	return count, err
}

func (r *ProductReviewRepository) ExistsScoped(scopes ...func(*gorm.DB) *gorm.DB) (bool, error) {
	count, err := r.CountScoped(scopes...)
	return count > 0, err
}
