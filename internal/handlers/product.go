// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shopkit/orders-backend/internal/services"
	"github.com/shopkit/orders-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", nil)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.CreatedResponse(c, product)
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if name := c.Query("name"); name != "" {
		params.Name = name
	}
	if priceMin := c.Query("price_min"); priceMin != "" {
		if d, err := decimal.NewFromString(priceMin); err == nil {
			params.PriceMin = &d
		}
	}
	if priceMax := c.Query("price_max"); priceMax != "" {
		if d, err := decimal.NewFromString(priceMax); err == nil {
			params.PriceMax = &d
		}
	}
	if c.Query("in_stock") == "true" {
		params.InStock = true
	}
	if c.Query("out_of_stock") == "true" {
		params.OutOfStock = true
	}
	if lowStock := c.Query("low_stock"); lowStock != "" {
		if threshold, err := strconv.Atoi(lowStock); err == nil {
			params.LowStock = &threshold
		}
	}

	products, total, err := h.productService.SearchProducts(params)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	result := utils.CreatePaginationResult(products, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /products/search?q=term  (full-text)
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		utils.BadRequestResponse(c, "missing query parameter q", nil)
		return
	}

	products, err := h.productService.SearchProductsFullText(term)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, product)
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", nil)
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondError(c, err, "product")
		return
	}

	utils.NoContentResponse(c)
}
