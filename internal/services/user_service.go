// internal/services/user_service.go
package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/models"
	"github.com/shopkit/orders-backend/internal/repository"
	"github.com/shopkit/orders-backend/internal/repository/scope"
	"github.com/shopkit/orders-backend/internal/utils"
)

type UserService struct {
	users  *repository.UserRepository
	orders *repository.OrderRepository
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=150"`
}

type UpdateUserRequest struct {
	Name  string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email string `json:"email,omitempty" validate:"omitempty,email,max=150"`
}

type UserSearchParams struct {
	utils.PaginationParams
	Name          string
	Email         string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	HasOrders     bool
}

func NewUserService(users *repository.UserRepository, orders *repository.OrderRepository) *UserService {
	return &UserService{users: users, orders: orders}
}

// CreateUser inserts the user as given. Email uniqueness is left to the
// database; a duplicate surfaces as gorm.ErrDuplicatedKey.
func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User created")

	return user, nil
}

func (s *UserService) GetUser(id int64) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) GetUserWithOrders(id int64) (*models.User, error) {
	return s.users.FindByIDWithOrders(id)
}

func (s *UserService) SearchUsers(params UserSearchParams) ([]models.User, int64, error) {
	var scopes []func(*gorm.DB) *gorm.DB

	if params.Name != "" {
		scopes = append(scopes, scope.UserNameContains(params.Name))
	}
	if params.Email != "" {
		scopes = append(scopes, scope.UserHasEmail(params.Email))
	}
	if params.CreatedAfter != nil {
		scopes = append(scopes, scope.UserCreatedAfter(*params.CreatedAfter))
	}
	if params.CreatedBefore != nil {
		scopes = append(scopes, scope.UserCreatedBefore(*params.CreatedBefore))
	}
	if params.HasOrders {
		scopes = append(scopes, scope.UserHasOrders())
	}

	order := params.OrderClause([]string{"created_at", "name", "email"})
	return s.users.FindPageScoped(params.Limit, params.Offset(), order, scopes...)
}

func (s *UserService) UpdateUser(id int64, req *UpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user; the database cascades to orders, their items,
// and the user's reviews.
func (s *UserService) DeleteUser(id int64) error {
	if _, err := s.users.FindByID(id); err != nil {
		return err
	}

	if err := s.users.Delete(id); err != nil {
		return err
	}

	logrus.WithField("user_id", id).Info("User deleted")
	return nil
}

// RemoveOrder detaches the order through the parent-managed helper so it is
// orphan-removed on save.
func (s *UserService) RemoveOrder(userID, orderID int64) error {
	user, err := s.users.FindByIDWithOrders(userID)
	if err != nil {
		return err
	}

	for _, order := range user.Orders {
		if order.ID == orderID {
			user.RemoveOrder(order)
			return s.users.Save(user)
		}
	}

	return gorm.ErrRecordNotFound
}
