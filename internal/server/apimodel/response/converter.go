package response

import (
	"encoding/json"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
)

// FromBatchEntity 从批次实体转换为响应 DTO
func FromBatchEntity(batch *entity.AnalysisBatch) *BatchResponse {
	resp := &BatchResponse{
		ID:         batch.ID,
		BatchNo:    batch.BatchNo,
		OrgID:      batch.OrgID,
		Status:     batch.Status,
		OrderCount: batch.OrderCount,
		Error:      batch.ErrorMessage,
		CreatedAt:  batch.CreatedAt,
		UpdatedAt:  batch.UpdatedAt,
	}

	if len(batch.AnalysisResult) > 0 {
		var analysis interface{}
		if err := json.Unmarshal(batch.AnalysisResult, &analysis); err == nil {
			resp.Analysis = analysis
		}
	}

	return resp
}
