package model

// BatchAnalyzeCallback 批次分析回调消息（标准化）
// 用于 Worker → API 服务 callback consumer 的消息传递
type BatchAnalyzeCallback struct {
	RequestID      string             `json:"request_id"`                // 对应请求的 request_id（链路追踪）
	BatchID        string             `json:"batch_id"`                  // 批次 ID
	OrgID          string             `json:"org_id"`                    // 组织 ID
	Status         string             `json:"status"`                    // 回调状态: SUCCESS / FAILED
	AnalysisResult *BatchAnalysisData `json:"analysis_result,omitempty"` // 分析结果（成功时返回）
	Error          string             `json:"error,omitempty"`           // 错误信息（失败时返回）
	ProcessedAt    int64              `json:"processed_at"`              // 处理时间戳（Unix timestamp）
}

// BatchAnalysisData 批次分析结果数据
type BatchAnalysisData struct {
	BatchID     string           `json:"batch_id"`     // 批次 ID
	OrderCount  int              `json:"order_count"`  // 分析的订单数
	ResultCount int              `json:"result_count"` // 命中的结果数
	Results     []AnalysisResult `json:"results"`      // 分析结果列表
}

// 回调状态常量
const (
	CallbackStatusSuccess = "SUCCESS" // 分析成功
	CallbackStatusFailed  = "FAILED"  // 分析失败
)
