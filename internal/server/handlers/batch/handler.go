package batch

import "github.com/mahirr476/Paragon-procurement-App-sub000/internal/services/svbatch"

// BatchHandler 批次 HTTP 处理器
type BatchHandler struct {
	batchService *svbatch.BatchService
}

// NewBatchHandler 创建批次处理器实例
func NewBatchHandler(batchService *svbatch.BatchService) *BatchHandler {
	return &BatchHandler{
		batchService: batchService,
	}
}
