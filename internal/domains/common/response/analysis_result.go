package response

import (
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/common/job"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/errorutil"
)

// AnalysisResult 批次分析结果（实现 ResultI 接口）
type AnalysisResult struct {
	BatchID string           `json:"batch_id"`
	Status  string           `json:"status"`
	Data    interface{}      `json:"data"`
	Error   *errorutil.Error `json:"error,omitempty"`
}

const (
	AnalysisStatusSuccess = "SUCCESS"
	AnalysisStatusFailed  = "FAILED"
)

// NewAnalysisResult 创建批次分析结果
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{}
}

// Set 实现 ResultI 接口
func (r *AnalysisResult) Set(meta *job.Meta, err error) {
	r.BatchID = meta.BatchID
	if err != nil {
		r.Status = AnalysisStatusFailed
		r.Error = errorutil.Wrap(err)
	} else {
		r.Status = AnalysisStatusSuccess
	}
}

// GetStatus 实现 ResultI 接口
func (r *AnalysisResult) GetStatus() string {
	return r.Status
}
