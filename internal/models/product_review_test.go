// internal/models/product_review_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductReviewEqualityByCompositeKey(t *testing.T) {
	a := &ProductReview{UserID: 1, ProductID: 2, Rating: 5, Comment: "great"}
	b := &ProductReview{UserID: 1, ProductID: 2, Rating: 1}

	// Same (user, product) pair is the same review regardless of other fields.
	assert.True(t, a.Equal(b))
}

func TestProductReviewInequalityWhenEitherKeyPartDiffers(t *testing.T) {
	base := &ProductReview{UserID: 1, ProductID: 2}

	assert.False(t, base.Equal(&ProductReview{UserID: 1, ProductID: 3}))
	assert.False(t, base.Equal(&ProductReview{UserID: 9, ProductID: 2}))
	assert.False(t, base.Equal(nil))
}
