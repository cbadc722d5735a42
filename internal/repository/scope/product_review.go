// internal/repository/scope/product_review.go
package scope

import (
	"gorm.io/gorm"
)

func ReviewByUser(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func ReviewByProduct(productID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("product_id = ?", productID)
	}
}

func ReviewRatingAtLeast(rating int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("rating >= ?", rating)
	}
}

func ReviewHasComment() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("comment IS NOT NULL AND comment <> ''")
	}
}

func ReviewCommentContains(text string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("comment ILIKE ?", "%"+text+"%")
	}
}
