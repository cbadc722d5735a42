// internal/models/user.go
package models

import (
	"time"
)

// User owns its orders: deleting a user deletes them, and orders detached
// through RemoveOrder are deleted from storage on the next repository save.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:150;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"->;default:CURRENT_TIMESTAMP"`

	// Relationships
	Orders []*Order `json:"orders,omitempty" gorm:"foreignKey:UserID"`

	detachedOrders []*Order
}

// AddOrder attaches order to the user and keeps both sides of the
// relationship in sync. Use AddOrder/RemoveOrder instead of mutating
// Orders directly.
func (u *User) AddOrder(order *Order) {
	order.User = u
	order.UserID = u.ID
	u.Orders = append(u.Orders, order)
}

// RemoveOrder detaches order from the user. If the order was already
// persisted it is remembered for orphan removal on the next save.
func (u *User) RemoveOrder(order *Order) {
	for i, o := range u.Orders {
		if o == order || (order.ID != 0 && o.ID == order.ID) {
			u.Orders = append(u.Orders[:i], u.Orders[i+1:]...)
			break
		}
	}
	order.User = nil
	if order.ID != 0 {
		u.detachedOrders = append(u.detachedOrders, order)
	}
}

// DetachedOrders lists persisted orders removed via RemoveOrder and not yet
// deleted from storage.
func (u *User) DetachedOrders() []*Order {
	return u.detachedOrders
}

func (u *User) ClearDetachedOrders() {
	u.detachedOrders = nil
}

// Equal reports identity based on the primary key only.
func (u *User) Equal(other *User) bool {
	return other != nil && u.ID == other.ID
}
