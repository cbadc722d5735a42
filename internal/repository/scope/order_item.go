// internal/repository/scope/order_item.go
package scope

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func ItemByOrder(orderID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("order_id = ?", orderID)
	}
}

func ItemByProduct(productID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("product_id = ?", productID)
	}
}

// ItemByUser reaches through the owning order to its user.
func ItemByUser(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("orders.user_id = ?", userID)
	}
}

func ItemQuantityGreaterThan(quantity int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("quantity > ?", quantity)
	}
}

func ItemSubtotalGreaterThan(subtotal decimal.Decimal) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("subtotal > ?", subtotal)
	}
}
