// internal/handlers/user.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopkit/orders-backend/internal/services"
	"github.com/shopkit/orders-backend/internal/utils"
)

type UserHandler struct {
	userService  *services.UserService
	orderService *services.OrderService
}

func NewUserHandler(userService *services.UserService, orderService *services.OrderService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		orderService: orderService,
	}
}

// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", nil)
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		respondError(c, err, "user")
		return
	}

	utils.CreatedResponse(c, user)
}

// GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	params := services.UserSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if name := c.Query("name"); name != "" {
		params.Name = name
	}
	if email := c.Query("email"); email != "" {
		params.Email = email
	}
	if after := c.Query("created_after"); after != "" {
		if t, err := time.Parse(time.RFC3339, after); err == nil {
			params.CreatedAfter = &t
		}
	}
	if before := c.Query("created_before"); before != "" {
		if t, err := time.Parse(time.RFC3339, before); err == nil {
			params.CreatedBefore = &t
		}
	}
	if c.Query("has_orders") == "true" {
		params.HasOrders = true
	}

	users, total, err := h.userService.SearchUsers(params)
	if err != nil {
		respondError(c, err, "user")
		return
	}

	result := utils.CreatePaginationResult(users, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var err error
	if c.Query("with_orders") == "true" {
		user, e := h.userService.GetUserWithOrders(id)
		if e == nil {
			utils.SuccessResponse(c, user)
			return
		}
		err = e
	} else {
		user, e := h.userService.GetUser(id)
		if e == nil {
			utils.SuccessResponse(c, user)
			return
		}
		err = e
	}

	respondError(c, err, "user")
}

// GET /users/:id/orders
func (h *UserHandler) GetUserOrders(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersByUser(id)
	if err != nil {
		respondError(c, err, "order")
		return
	}

	utils.SuccessResponse(c, orders)
}

// PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", nil)
		return
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		respondError(c, err, "user")
		return
	}

	utils.SuccessResponse(c, user)
}

// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondError(c, err, "user")
		return
	}

	utils.NoContentResponse(c)
}

// DELETE /users/:id/orders/:orderID
func (h *UserHandler) RemoveUserOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	if err := h.userService.RemoveOrder(id, orderID); err != nil {
		respondError(c, err, "order")
		return
	}

	utils.NoContentResponse(c)
}
