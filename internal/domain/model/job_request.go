package model

// BatchAnalyzeJob 批次分析任务消息（标准化）
// 用于 API 服务 → Worker 的消息传递
type BatchAnalyzeJob struct {
	Payload BatchAnalyzePayload `json:"payload"`
}

// BatchAnalyzePayload Job 负载
type BatchAnalyzePayload struct {
	Data BatchAnalyzeData `json:"data"`
}

// BatchAnalyzeData Job 数据层
type BatchAnalyzeData struct {
	// 元信息
	RequestID  string `json:"request_id"`  // 请求 ID（全链路追踪）
	OrgID      string `json:"org_id"`      // 组织 ID
	ActionType string `json:"action_type"` // 动作类型，固定值 "po_batch_analyze"
	BatchID    string `json:"batch_id"`    // 批次 ID

	// 业务数据
	Data BatchAnalyzeBusinessData `json:"data"`
}

// BatchAnalyzeBusinessData 批次分析业务数据
type BatchAnalyzeBusinessData struct {
	BatchID    string `json:"batch_id"`    // 批次 ID
	OrgID      string `json:"org_id"`      // 组织 ID
	OrderCount int    `json:"order_count"` // 批次内订单数（用于校验）
}

// ActionType 常量
const (
	ActionTypeBatchAnalyze = "po_batch_analyze"
)
