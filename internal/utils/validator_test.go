// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedPayload struct {
	Name   string `validate:"required,max=10"`
	Email  string `validate:"required,email"`
	Status string `validate:"omitempty,oneof=CREATED PAID CANCELLED"`
}

func TestValidateStructPasses(t *testing.T) {
	err := ValidateStruct(validatedPayload{Name: "Ana", Email: "ana@example.com", Status: "PAID"})
	assert.NoError(t, err)
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	err := ValidateStruct(validatedPayload{Email: "not-an-email", Status: "SHIPPED"})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 3)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "required", byField["name"].Tag)
	assert.Equal(t, "Name is required", byField["name"].Message)
	assert.Equal(t, "email", byField["email"].Tag)
	assert.Equal(t, "Invalid email format", byField["email"].Message)
	assert.Equal(t, "oneof", byField["status"].Tag)
	assert.Contains(t, byField["status"].Message, "must be one of")
}

func TestGetValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
