// internal/services/review_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/models"
	"github.com/shopkit/orders-backend/internal/repository"
	"github.com/shopkit/orders-backend/internal/repository/scope"
	"github.com/shopkit/orders-backend/internal/utils"
)

type ReviewService struct {
	reviews *repository.ProductReviewRepository
}

// Rating is 1-5 by convention only and deliberately carries no range tag.
type CreateReviewRequest struct {
	UserID  int64  `json:"user_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

type ReviewSearchParams struct {
	utils.PaginationParams
	UserID     *int64
	ProductID  *int64
	MinRating  *int
	HasComment bool
}

func NewReviewService(reviews *repository.ProductReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// CreateReview inserts the review for (user, product). A second review for
// the same pair fails on the composite key with gorm.ErrDuplicatedKey; a
// nonexistent user or product fails with gorm.ErrForeignKeyViolated.
func (s *ReviewService) CreateReview(productID int64, req *CreateReviewRequest) (*models.ProductReview, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	review := &models.ProductReview{
		UserID:    req.UserID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    review.UserID,
		"product_id": review.ProductID,
		"rating":     review.Rating,
	}).Info("Review created")

	return review, nil
}

func (s *ReviewService) GetReview(userID, productID int64) (*models.ProductReview, error) {
	return s.reviews.FindByKey(userID, productID)
}

func (s *ReviewService) GetReviewsByProduct(productID int64) ([]models.ProductReview, error) {
	return s.reviews.FindWithRelationsByProduct(productID)
}

func (s *ReviewService) GetReviewsByUser(userID int64) ([]models.ProductReview, error) {
	return s.reviews.FindByUserID(userID)
}

func (s *ReviewService) SearchReviews(params ReviewSearchParams) ([]models.ProductReview, error) {
	var scopes []func(*gorm.DB) *gorm.DB

	if params.UserID != nil {
		scopes = append(scopes, scope.ReviewByUser(*params.UserID))
	}
	if params.ProductID != nil {
		scopes = append(scopes, scope.ReviewByProduct(*params.ProductID))
	}
	if params.MinRating != nil {
		scopes = append(scopes, scope.ReviewRatingAtLeast(*params.MinRating))
	}
	if params.HasComment {
		scopes = append(scopes, scope.ReviewHasComment())
	}

	return s.reviews.FindAllScoped(scopes...)
}

func (s *ReviewService) UpdateReview(userID, productID int64, req *UpdateReviewRequest) (*models.ProductReview, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	review, err := s.reviews.FindByKey(userID, productID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviews.Update(review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) DeleteReview(userID, productID int64) error {
	if _, err := s.reviews.FindByKey(userID, productID); err != nil {
		return err
	}

	if err := s.reviews.Delete(userID, productID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": productID,
	}).Info("Review deleted")

	return nil
}

func (s *ReviewService) ProductStatistics(productID int64) (*repository.ReviewStatistics, error) {
	return s.reviews.Statistics(productID)
}
