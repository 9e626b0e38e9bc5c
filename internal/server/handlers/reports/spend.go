package reports

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/ginx"
)

// SpendByCategory 分类支出接口
// GET /api/v1/reports/spend/categories
func (h *ReportHandler) SpendByCategory(c *gin.Context) {
	result, err := h.reportService.SpendByCategory(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] spend by category failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}

// SpendBySupplier 供应商支出接口（Top N）
// GET /api/v1/reports/spend/suppliers?limit=20
func (h *ReportHandler) SpendBySupplier(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	result, err := h.reportService.SpendBySupplier(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] spend by supplier failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}

// SpendTrend 支出趋势接口
// GET /api/v1/reports/spend/trend?interval=monthly
func (h *ReportHandler) SpendTrend(c *gin.Context) {
	interval := c.DefaultQuery("interval", model.PeriodMonthly)
	switch interval {
	case model.PeriodMonthly, model.PeriodQuarterly:
	default:
		ginx.BadRequest(c, "interval must be one of: monthly, quarterly")
		return
	}

	result, err := h.reportService.SpendTrend(c.Request.Context(), interval)
	if err != nil {
		log.Printf("[ERROR] spend trend failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}
