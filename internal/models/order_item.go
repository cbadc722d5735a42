// internal/models/order_item.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem belongs to one order and one product. Subtotal is expected to be
// price x quantity at insertion time; it is stored as given and never
// recalculated.
type OrderItem struct {
	ID        int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:numeric(10,2)"`
	CreatedAt time.Time       `json:"created_at" gorm:"->;default:CURRENT_TIMESTAMP"`
	OrderID   int64           `json:"order_id" gorm:"not null;index"`
	ProductID int64           `json:"product_id" gorm:"not null;index"`

	// Relationships. The order back-reference is rewritten exclusively by
	// Order.AddItem/RemoveItem and excluded from JSON to avoid cycles.
	Order   *Order   `json:"-" gorm:"foreignKey:OrderID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Equal reports identity based on the primary key only.
func (i *OrderItem) Equal(other *OrderItem) bool {
	return other != nil && i.ID == other.ID
}
