// internal/repository/scope/user.go

// Package scope holds composable query predicates expressed as GORM scopes.
// Scopes combine with AND through db.Scopes(...) or a repository's
// FindAllScoped/CountScoped/ExistsScoped executors:
//
//	users, err := userRepo.FindAllScoped(
//		scope.UserNameContains("ana"),
//		scope.UserCreatedAfter(cutoff),
//	)
package scope

import (
	"time"

	"gorm.io/gorm"
)

func UserHasEmail(email string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	}
}

func UserNameContains(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("name ILIKE ?", "%"+name+"%")
	}
}

func UserCreatedAfter(date time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at > ?", date)
	}
}

func UserCreatedBefore(date time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at < ?", date)
	}
}

func UserCreatedBetween(start, end time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at BETWEEN ? AND ?", start, end)
	}
}

func UserHasOrders() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXISTS (SELECT 1 FROM orders WHERE orders.user_id = users.id)")
	}
}
