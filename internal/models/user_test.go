// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserAddOrderSyncsBothSides(t *testing.T) {
	user := &User{ID: 3, Name: "Ana", Email: "ana@example.com"}
	order := &Order{Total: decimal.NewFromInt(50)}

	user.AddOrder(order)

	assert.Len(t, user.Orders, 1)
	assert.Same(t, user, order.User)
	assert.Equal(t, user.ID, order.UserID)
}

func TestUserRemoveOrderTracksPersistedOrders(t *testing.T) {
	user := &User{ID: 3}
	order := &Order{ID: 11}
	user.AddOrder(order)

	user.RemoveOrder(order)

	assert.Empty(t, user.Orders)
	assert.Nil(t, order.User)
	assert.Len(t, user.DetachedOrders(), 1)

	user.ClearDetachedOrders()
	assert.Empty(t, user.DetachedOrders())
}

func TestUserEqualityByPrimaryKeyOnly(t *testing.T) {
	a := &User{ID: 1, Name: "Ana", Email: "ana@example.com"}
	b := &User{ID: 1, Name: "Renamed", Email: "other@example.com"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(&User{ID: 2, Name: "Ana", Email: "ana@example.com"}))
	assert.False(t, a.Equal(nil))
}

func TestProductEqualityByPrimaryKeyOnly(t *testing.T) {
	a := &Product{ID: 4, Name: "Mouse", Price: decimal.NewFromInt(50)}
	b := &Product{ID: 4, Name: "Keyboard", Price: decimal.NewFromInt(180)}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(&Product{ID: 5}))
}
