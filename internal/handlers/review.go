// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopkit/orders-backend/internal/services"
	"github.com/shopkit/orders-backend/internal/utils"
)

// ReviewHandler routes nest under products because a review is addressed by
// its composite key: /products/:id/reviews/:userID.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// POST /products/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", nil)
		return
	}

	review, err := h.reviewService.CreateReview(productID, &req)
	if err != nil {
		respondError(c, err, "review")
		return
	}

	utils.CreatedResponse(c, review)
}

// GET /products/:id/reviews
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetReviewsByProduct(productID)
	if err != nil {
		respondError(c, err, "review")
		return
	}

	utils.SuccessResponse(c, reviews)
}

// GET /products/:id/reviews/stats
func (h *ReviewHandler) GetProductReviewStats(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.reviewService.ProductStatistics(productID)
	if err != nil {
		respondError(c, err, "review")
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /products/:id/reviews/:userID
func (h *ReviewHandler) GetReview(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(userID, productID)
	if err != nil {
		respondError(c, err, "review")
		return
	}

	utils.SuccessResponse(c, review)
}

// PUT /products/:id/reviews/:userID
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	var req services.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", nil)
		return
	}

	review, err := h.reviewService.UpdateReview(userID, productID, &req)
	if err != nil {
		respondError(c, err, "review")
		return
	}

	utils.SuccessResponse(c, review)
}

// DELETE /products/:id/reviews/:userID
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(userID, productID); err != nil {
		respondError(c, err, "review")
		return
	}

	utils.NoContentResponse(c)
}

// GET /users/:id/reviews
func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetReviewsByUser(userID)
	if err != nil {
		respondError(c, err, "review")
		return
	}

	utils.SuccessResponse(c, reviews)
}
