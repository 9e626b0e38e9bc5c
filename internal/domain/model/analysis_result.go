package model

// AnalysisResult 单条异常检测结果
// 同一订单可能产生多条不同类型的结果
type AnalysisResult struct {
	Type     string                 `json:"type"`     // price_anomaly/duplicate/pattern/risk_flag
	Severity string                 `json:"severity"` // critical/high/medium/low
	Message  string                 `json:"message"`  // 人类可读描述
	POID     string                 `json:"po_id"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// 结果类型常量
const (
	ResultTypePriceAnomaly = "price_anomaly"
	ResultTypeDuplicate    = "duplicate"
	ResultTypePattern      = "pattern"
	ResultTypeRiskFlag     = "risk_flag"
)

// 严重级别常量（critical > high > medium > low）
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// 基线缺失原因常量（price_anomaly 的 details.reason）
const (
	ReasonNoBaseline   = "no_baseline"
	ReasonZeroBaseline = "zero_baseline"
)

// SeverityRank 返回严重级别的排序权重（越严重越小）
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}
