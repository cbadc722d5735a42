// internal/models/order_test.go
package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderAddItemSyncsBothSides(t *testing.T) {
	order := &Order{ID: 10, Total: decimal.NewFromInt(50), UserID: 1}
	item := &OrderItem{Quantity: 1, Subtotal: decimal.NewFromInt(50), ProductID: 2}

	order.AddItem(item)

	assert.Len(t, order.Items, 1)
	assert.Same(t, order, item.Order)
	assert.Equal(t, order.ID, item.OrderID)
}

func TestOrderRemoveItemClearsBackReference(t *testing.T) {
	order := &Order{ID: 10}
	item := &OrderItem{ID: 7, Quantity: 2, ProductID: 3}
	order.AddItem(item)

	order.RemoveItem(item)

	assert.Empty(t, order.Items)
	assert.Nil(t, item.Order)
}

func TestOrderRemoveItemTracksPersistedItemsForOrphanRemoval(t *testing.T) {
	order := &Order{ID: 10}
	persisted := &OrderItem{ID: 7, ProductID: 3}
	transient := &OrderItem{ProductID: 4}
	order.AddItem(persisted)
	order.AddItem(transient)

	order.RemoveItem(persisted)
	order.RemoveItem(transient)

	// Only the persisted item needs deleting from storage.
	detached := order.DetachedItems()
	assert.Len(t, detached, 1)
	assert.Equal(t, int64(7), detached[0].ID)

	order.ClearDetachedItems()
	assert.Empty(t, order.DetachedItems())
}

func TestOrderRemoveItemByMatchingID(t *testing.T) {
	order := &Order{ID: 10}
	order.AddItem(&OrderItem{ID: 7, ProductID: 3})

	// A different instance with the same primary key identifies the item.
	order.RemoveItem(&OrderItem{ID: 7})

	assert.Empty(t, order.Items)
}

func TestOrderEqualityByPrimaryKeyOnly(t *testing.T) {
	a := &Order{ID: 1, Total: decimal.NewFromInt(10), Status: OrderStatusCreated}
	b := &Order{ID: 1, Total: decimal.NewFromInt(99), Status: OrderStatusPaid}
	c := &Order{ID: 2, Total: decimal.NewFromInt(10), Status: OrderStatusCreated}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestOrderItemEqualityByPrimaryKeyOnly(t *testing.T) {
	a := &OrderItem{ID: 5, Quantity: 1}
	b := &OrderItem{ID: 5, Quantity: 3}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(&OrderItem{ID: 6, Quantity: 1}))
}
