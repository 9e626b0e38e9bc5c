package trends

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/services/svreport"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/ginx"
)

// TrendHandler 趋势 HTTP 处理器
type TrendHandler struct {
	reportService *svreport.ReportService
}

// NewTrendHandler 创建趋势处理器实例
func NewTrendHandler(reportService *svreport.ReportService) *TrendHandler {
	return &TrendHandler{
		reportService: reportService,
	}
}

// Periods 周期趋势接口
// GET /api/v1/trends/periods?period_type=monthly
func (h *TrendHandler) Periods(c *gin.Context) {
	periodType := c.DefaultQuery("period_type", model.PeriodMonthly)
	switch periodType {
	case model.PeriodWeekly, model.PeriodMonthly, model.PeriodQuarterly:
	default:
		ginx.BadRequest(c, "period_type must be one of: weekly, monthly, quarterly")
		return
	}

	metrics, err := h.reportService.PeriodTrends(c.Request.Context(), periodType)
	if err != nil {
		log.Printf("[ERROR] period trends failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, metrics)
}

// Suppliers 供应商趋势接口
// GET /api/v1/trends/suppliers
func (h *TrendHandler) Suppliers(c *gin.Context) {
	suppliers, err := h.reportService.SupplierTrends(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] supplier trends failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, suppliers)
}

// Anomalies 详细趋势异常接口
// GET /api/v1/trends/anomalies
func (h *TrendHandler) Anomalies(c *gin.Context) {
	anomalies, err := h.reportService.TrendAnomalies(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] trend anomalies failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, anomalies)
}
