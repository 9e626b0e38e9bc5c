package model

// Ratio 标记化比值
// 波动率、价格方差等指标的分母（均值）可能为 0，此时比值无意义
// 用 Valid 标记代替 NaN/Inf，调用方展示前必须检查 Valid
type Ratio struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// FiniteRatio 创建有效比值
func FiniteRatio(value float64) Ratio {
	return Ratio{Value: value, Valid: true}
}

// NotApplicable 创建无效比值（分母为零等场景）
func NotApplicable() Ratio {
	return Ratio{Valid: false}
}
