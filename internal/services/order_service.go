// internal/services/order_service.go
package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/models"
	"github.com/shopkit/orders-backend/internal/repository"
	"github.com/shopkit/orders-backend/internal/repository/scope"
	"github.com/shopkit/orders-backend/internal/utils"
)

type OrderService struct {
	orders *repository.OrderRepository
}

// Total and item subtotals are stored as given; the service never recomputes
// them from product prices. That reconciliation is the caller's concern.
type CreateOrderRequest struct {
	UserID int64                    `json:"user_id" validate:"required"`
	Total  decimal.Decimal          `json:"total"`
	Items  []CreateOrderItemRequest `json:"items" validate:"dive"`
}

type CreateOrderItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Any of the three statuses is accepted in any order; the typical
// CREATED -> PAID/CANCELLED flow is not enforced.
type SetOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=CREATED PAID CANCELLED"`
}

type OrderSearchParams struct {
	utils.PaginationParams
	UserID        *int64
	Status        *models.OrderStatus
	TotalMin      *decimal.Decimal
	TotalMax      *decimal.Decimal
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func NewOrderService(orders *repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// CreateOrder persists the order and its items in one cascade. A user_id
// pointing nowhere surfaces as gorm.ErrForeignKeyViolated.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order := &models.Order{
		Total:  req.Total,
		Status: models.OrderStatusCreated,
		UserID: req.UserID,
	}

	for _, itemReq := range req.Items {
		order.AddItem(&models.OrderItem{
			Quantity:  itemReq.Quantity,
			Subtotal:  itemReq.Subtotal,
			ProductID: itemReq.ProductID,
		})
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"items":    len(order.Items),
	}).Info("Order created")

	return order, nil
}

func (s *OrderService) GetOrder(id int64) (*models.Order, error) {
	return s.orders.FindByIDWithItems(id)
}

func (s *OrderService) GetOrdersByUser(userID int64) ([]models.Order, error) {
	return s.orders.FindWithItemsByUser(userID)
}

func (s *OrderService) SearchOrders(params OrderSearchParams) ([]models.Order, int64, error) {
	var scopes []func(*gorm.DB) *gorm.DB

	if params.UserID != nil {
		scopes = append(scopes, scope.OrderByUser(*params.UserID))
	}
	if params.Status != nil {
		scopes = append(scopes, scope.OrderByStatus(*params.Status))
	}
	if params.TotalMin != nil && params.TotalMax != nil {
		scopes = append(scopes, scope.OrderTotalBetween(*params.TotalMin, *params.TotalMax))
	} else if params.TotalMin != nil {
		scopes = append(scopes, scope.OrderTotalGreaterThan(*params.TotalMin))
	} else if params.TotalMax != nil {
		scopes = append(scopes, scope.OrderTotalLessThan(*params.TotalMax))
	}
	if params.CreatedAfter != nil && params.CreatedBefore != nil {
		scopes = append(scopes, scope.OrderCreatedBetween(*params.CreatedAfter, *params.CreatedBefore))
	} else if params.CreatedAfter != nil {
		scopes = append(scopes, scope.OrderCreatedAfter(*params.CreatedAfter))
	} else if params.CreatedBefore != nil {
		scopes = append(scopes, scope.OrderCreatedBefore(*params.CreatedBefore))
	}

	order := params.OrderClause([]string{"created_at", "total", "status"})
	return s.orders.FindPageScoped(params.Limit, params.Offset(), order, scopes...)
}

// SetStatus overwrites the status with whatever valid enum value the caller
// sends; no transition checks apply.
func (s *OrderService) SetStatus(id int64, req *SetOrderStatusRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}

	order.Status = req.Status
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"status":   order.Status,
	}).Info("Order status set")

	return order, nil
}

// AddItem attaches a new item through the parent-managed helper and saves
// the order, persisting the item by cascade.
func (s *OrderService) AddItem(orderID int64, req *CreateOrderItemRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.orders.FindByIDWithItems(orderID)
	if err != nil {
		return nil, err
	}

	order.AddItem(&models.OrderItem{
		Quantity:  req.Quantity,
		Subtotal:  req.Subtotal,
		ProductID: req.ProductID,
	})

	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	return order, nil
}

// RemoveItem detaches the item through the parent-managed helper; saving the
// order orphan-removes it from storage.
func (s *OrderService) RemoveItem(orderID, itemID int64) (*models.Order, error) {
	order, err := s.orders.FindByIDWithItems(orderID)
	if err != nil {
		return nil, err
	}

	var target *models.OrderItem
	for _, item := range order.Items {
		if item.ID == itemID {
			target = item
			break
		}
	}
	if target == nil {
		return nil, gorm.ErrRecordNotFound
	}

	order.RemoveItem(target)
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) DeleteOrder(id int64) error {
	if _, err := s.orders.FindByID(id); err != nil {
		return err
	}

	if err := s.orders.Delete(id); err != nil {
		return err
	}

	logrus.WithField("order_id", id).Info("Order deleted")
	return nil
}
