// internal/handlers/stats.go
package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shopkit/orders-backend/internal/services"
	"github.com/shopkit/orders-backend/internal/utils"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GET /stats/orders-by-status
func (h *StatsHandler) GetOrdersByStatus(c *gin.Context) {
	counts, err := h.statsService.OrderCountByStatus()
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, counts)
}

// GET /stats/sales?start=...&end=...
func (h *StatsHandler) GetSales(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid start date", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid end date", nil)
		return
	}

	stats, err := h.statsService.Sales(start, end)
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /stats/top-users?limit=N
func (h *StatsHandler) GetTopUsers(c *gin.Context) {
	sales, err := h.statsService.TopUsersBySales(limitQuery(c))
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, sales)
}

// GET /stats/top-products?limit=N
func (h *StatsHandler) GetTopProducts(c *gin.Context) {
	sales, err := h.statsService.TopSellingProducts(limitQuery(c))
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, sales)
}

// GET /stats/top-rated?limit=N
func (h *StatsHandler) GetTopRated(c *gin.Context) {
	ratings, err := h.statsService.TopRatedProducts(limitQuery(c))
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, ratings)
}

// GET /stats/revenue-by-product
func (h *StatsHandler) GetRevenueByProduct(c *gin.Context) {
	revenue, err := h.statsService.RevenueByProduct()
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, revenue)
}

// GET /stats/inventory-value
func (h *StatsHandler) GetInventoryValue(c *gin.Context) {
	value, err := h.statsService.InventoryValue()
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, gin.H{"inventory_value": value})
}

// GET /stats/prices?min=...&max=...
func (h *StatsHandler) GetPriceStatistics(c *gin.Context) {
	min, err := decimal.NewFromString(c.DefaultQuery("min", "0"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid min price", nil)
		return
	}
	max, err := decimal.NewFromString(c.DefaultQuery("max", "999999999"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid max price", nil)
		return
	}

	stats, err := h.statsService.PriceStatistics(min, max)
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /stats/users/:id/paid-total
func (h *StatsHandler) GetUserPaidTotal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	total, err := h.statsService.UserPaidTotal(id)
	if err != nil {
		respondError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, gin.H{"user_id": id, "paid_total": total})
}

func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		return 10
	}
	return limit
}
