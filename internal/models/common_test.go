// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValues(t *testing.T) {
	assert.Equal(t, OrderStatus("CREATED"), OrderStatusCreated)
	assert.Equal(t, OrderStatus("PAID"), OrderStatusPaid)
	assert.Equal(t, OrderStatus("CANCELLED"), OrderStatusCancelled)
}
