package reports

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/ginx"
)

// Performance 供应商绩效接口
// GET /api/v1/reports/performance
func (h *ReportHandler) Performance(c *gin.Context) {
	result, err := h.reportService.SupplierPerformance(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] supplier performance failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}

// Volume 月度订单量接口
// GET /api/v1/reports/volume
func (h *ReportHandler) Volume(c *gin.Context) {
	result, err := h.reportService.POVolume(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] po volume failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}

// Concentration 供应商集中度接口
// GET /api/v1/reports/concentration
func (h *ReportHandler) Concentration(c *gin.Context) {
	result, err := h.reportService.SupplierConcentration(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] supplier concentration failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}

// AverageValue 平均订单金额接口
// GET /api/v1/reports/average-value
func (h *ReportHandler) AverageValue(c *gin.Context) {
	result, err := h.reportService.AveragePOValue(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] average po value failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}
