package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// AnalyzeOutput 批次分析的最终输出结构
type AnalyzeOutput struct {
	BatchID     string `json:"batch_id"`
	OrderCount  int    `json:"order_count"`
	ResultCount int    `json:"result_count"`
	ProcessedAt int64  `json:"processed_at"`
}

// AnalyzeResulter 批次分析结果处理器
type AnalyzeResulter struct {
	srcData interface{}
	dstData interface{}
}

// NewAnalyzeResulter 创建批次分析结果处理器
func NewAnalyzeResulter() *AnalyzeResulter {
	return &AnalyzeResulter{}
}

// Set 设置业务结果数据
func (r *AnalyzeResulter) Set(ctx context.Context, data interface{}) error {
	r.srcData = data

	summary, ok := data.(*model.BatchAnalysisData)
	if !ok || summary == nil {
		return fmt.Errorf("invalid analysis summary type: %T", data)
	}

	r.dstData = &AnalyzeOutput{
		BatchID:     summary.BatchID,
		OrderCount:  summary.OrderCount,
		ResultCount: summary.ResultCount,
		ProcessedAt: time.Now().Unix(),
	}

	return nil
}

// Get 获取格式化后的输出
func (r *AnalyzeResulter) Get(ctx context.Context) interface{} {
	return r.dstData
}
