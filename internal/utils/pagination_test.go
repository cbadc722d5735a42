// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)

	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsForQuery(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
	assert.Empty(t, params.Search)
}

func TestGetPaginationParamsClampsInvalidValues(t *testing.T) {
	params := paramsForQuery(t, "page=0&limit=500&order=sideways")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsReadsQuery(t *testing.T) {
	params := paramsForQuery(t, "page=3&limit=50&sort=email&order=asc&search=ana")

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 50, params.Limit)
	assert.Equal(t, "email", params.Sort)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, "ana", params.Search)
}

func TestOffset(t *testing.T) {
	params := PaginationParams{Page: 3, Limit: 25}
	assert.Equal(t, 50, params.Offset())
}

func TestOrderClauseAllowsOnlyWhitelistedFields(t *testing.T) {
	allowed := []string{"name", "email", "created_at"}

	params := PaginationParams{Sort: "email", Order: "asc"}
	assert.Equal(t, "email asc", params.OrderClause(allowed))

	params = PaginationParams{Sort: "password", Order: "desc"}
	assert.Equal(t, "created_at desc", params.OrderClause(allowed))
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 20}
	result := CreatePaginationResult([]string{"a"}, 41, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, int64(41), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}
