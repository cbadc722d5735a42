// internal/models/product.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is referenced, never owned, by order items and reviews. Deleting a
// product cascades to both at the database level (ON DELETE CASCADE); no
// application-side orphan management applies here.
type Product struct {
	ID        int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string          `json:"name" gorm:"size:120;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Stock     int             `json:"stock" gorm:"default:0"`
	CreatedAt time.Time       `json:"created_at" gorm:"->;default:CURRENT_TIMESTAMP"`

	// Relationships
	OrderItems []*OrderItem `json:"order_items,omitempty" gorm:"foreignKey:ProductID"`
}

// Equal reports identity based on the primary key only.
func (p *Product) Equal(other *Product) bool {
	return other != nil && p.ID == other.ID
}
