// internal/models/order.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order belongs to one user and exclusively owns its items. Total is stored
// as given by the caller; it is never recomputed from item subtotals.
type Order struct {
	ID        int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Total     decimal.Decimal `json:"total" gorm:"type:numeric(10,2);not null"`
	Status    OrderStatus     `json:"status" gorm:"size:20;not null;default:'CREATED'"`
	CreatedAt time.Time       `json:"created_at" gorm:"->;default:CURRENT_TIMESTAMP"`
	UserID    int64           `json:"user_id" gorm:"not null;index"`

	// Relationships
	User  *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []*OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`

	detachedItems []*OrderItem
}

// AddItem attaches item to the order and keeps both sides of the
// relationship in sync. Use AddItem/RemoveItem instead of mutating Items
// directly.
func (o *Order) AddItem(item *OrderItem) {
	item.Order = o
	item.OrderID = o.ID
	o.Items = append(o.Items, item)
}

// RemoveItem detaches item from the order. If the item was already persisted
// it is remembered for orphan removal on the next save.
func (o *Order) RemoveItem(item *OrderItem) {
	for i, it := range o.Items {
		if it == item || (item.ID != 0 && it.ID == item.ID) {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			break
		}
	}
	item.Order = nil
	if item.ID != 0 {
		o.detachedItems = append(o.detachedItems, item)
	}
}

// DetachedItems lists persisted items removed via RemoveItem and not yet
// deleted from storage.
func (o *Order) DetachedItems() []*OrderItem {
	return o.detachedItems
}

func (o *Order) ClearDetachedItems() {
	o.detachedItems = nil
}

// Equal reports identity based on the primary key only.
func (o *Order) Equal(other *Order) bool {
	return other != nil && o.ID == other.ID
}
