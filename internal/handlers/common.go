// internal/handlers/common.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/utils"
)

// respondError maps storage failures to HTTP statuses. The failures
// themselves originate in the database (unique, foreign-key, not-null
// violations); nothing is retried or recovered here.
func respondError(c *gin.Context, err error, resource string) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		utils.ConflictResponse(c, resource+" already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		utils.BadRequestResponse(c, "referenced row does not exist", nil)
	case errors.As(err, &validationErrs):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErrs))
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		utils.BadRequestResponse(c, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}
