// internal/services/product_service.go
package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/models"
	"github.com/shopkit/orders-backend/internal/repository"
	"github.com/shopkit/orders-backend/internal/repository/scope"
	"github.com/shopkit/orders-backend/internal/utils"
)

type ProductService struct {
	products *repository.ProductRepository
}

// Price and stock carry no range validation on purpose: non-negativity is a
// convention of the schema, not an enforced constraint.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,max=120"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type UpdateProductRequest struct {
	Name  string           `json:"name,omitempty" validate:"omitempty,max=120"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Stock *int             `json:"stock,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Name       string
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	InStock    bool
	OutOfStock bool
	LowStock   *int
}

func NewProductService(products *repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product created")

	return product, nil
}

func (s *ProductService) GetProduct(id int64) (*models.Product, error) {
	return s.products.FindByID(id)
}

func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	var scopes []func(*gorm.DB) *gorm.DB

	if params.Name != "" {
		scopes = append(scopes, scope.ProductNameContains(params.Name))
	}
	if params.PriceMin != nil && params.PriceMax != nil {
		scopes = append(scopes, scope.ProductPriceBetween(*params.PriceMin, *params.PriceMax))
	} else if params.PriceMin != nil {
		scopes = append(scopes, scope.ProductPriceGreaterThan(*params.PriceMin))
	} else if params.PriceMax != nil {
		scopes = append(scopes, scope.ProductPriceLessThan(*params.PriceMax))
	}
	if params.InStock {
		scopes = append(scopes, scope.ProductInStock())
	}
	if params.OutOfStock {
		scopes = append(scopes, scope.ProductOutOfStock())
	}
	if params.LowStock != nil {
		scopes = append(scopes, scope.ProductLowStock(*params.LowStock))
	}

	order := params.OrderClause([]string{"created_at", "name", "price", "stock"})
	return s.products.FindPageScoped(params.Limit, params.Offset(), order, scopes...)
}

func (s *ProductService) SearchProductsFullText(term string) ([]models.Product, error) {
	return s.products.SearchByNameFullText(term)
}

func (s *ProductService) UpdateProduct(id int64, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.products.Update(product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes the product; the database cascades to its order
// items and reviews.
func (s *ProductService) DeleteProduct(id int64) error {
	if _, err := s.products.FindByID(id); err != nil {
		return err
	}

	if err := s.products.Delete(id); err != nil {
		return err
	}

	logrus.WithField("product_id", id).Info("Product deleted")
	return nil
}
