package batch

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/apimodel/request"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/apimodel/response"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/ginx"
)

// Create 提交分析批次接口
// POST /api/v1/batches?wait=10
func (h *BatchHandler) Create(c *gin.Context) {
	waitSeconds := 0
	if waitStr := c.Query("wait"); waitStr != "" {
		if w, err := strconv.Atoi(waitStr); err == nil && w > 0 {
			waitSeconds = w
		}
	}

	var req request.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	orgID := req.OrgID
	if orgID == "" {
		orgID = "0"
	}

	orders := req.ToOrderEntities()
	batch, err := h.batchService.CreateBatch(c.Request.Context(), orgID, orders, waitSeconds)
	if err != nil {
		log.Printf("[ERROR] create batch failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	if batch.Status == entity.BatchStatusAnalyzing {
		pollURL := fmt.Sprintf("/api/v1/batches/%s", batch.ID)
		ginx.Processing(c, batch.ID, pollURL)
		return
	}

	ginx.Success(c, response.FromBatchEntity(batch))
}
