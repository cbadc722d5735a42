// internal/models/common.go
package models

// OrderStatus is stored as its string name in orders.status.
//
// Typical flow: CREATED -> PAID when payment is confirmed, CREATED -> CANCELLED
// before payment, PAID -> CANCELLED on refund. Transitions are a business rule
// only; nothing in the code rejects an out-of-order assignment.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)
