// internal/models/product_review.go
package models

import (
	"time"
)

// ProductReview is keyed by (user_id, product_id): the composite primary key
// itself guarantees at most one review per user and product. Rating is by
// convention 1-5 but never range-checked.
type ProductReview struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID int64     `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment,omitempty" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at" gorm:"->;default:CURRENT_TIMESTAMP"`

	// Relationships
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Equal reports identity based on the full composite key.
func (r *ProductReview) Equal(other *ProductReview) bool {
	return other != nil && r.UserID == other.UserID && r.ProductID == other.ProductID
}
