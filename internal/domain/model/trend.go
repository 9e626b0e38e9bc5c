package model

// 周期类型常量
const (
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
)

// 订单频率分类常量
const (
	FrequencyWeekly    = "weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyIrregular = "irregular"
)

// TrendMetrics 单个时间周期的趋势指标
type TrendMetrics struct {
	Period        string   `json:"period"` // 周起始日期或 YYYY-MM
	OrderCount    int      `json:"order_count"`
	TotalAmount   float64  `json:"total_amount"`
	AverageValue  float64  `json:"average_value"`
	SupplierCount int      `json:"supplier_count"`
	TopCategory   string   `json:"top_category"` // 并列时取值不保证稳定
	Branches      []string `json:"branches"`
}

// SupplierTrend 单个供应商的行为画像
type SupplierTrend struct {
	Supplier       string  `json:"supplier"`
	OrderCount     int     `json:"order_count"`
	AverageRate    float64 `json:"average_rate"`
	RateVolatility Ratio   `json:"rate_volatility"` // stddev/mean，均值为 0 时无效
	OrderFrequency string  `json:"order_frequency"` // weekly/monthly/quarterly/irregular
}

// TrendAnomaly 趋势层面的异常记录
type TrendAnomaly struct {
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	Severity         string          `json:"severity"` // high/medium/low
	ItemName         string          `json:"item_name"`
	Category         string          `json:"category"`
	Supplier         string          `json:"supplier"`
	Branch           string          `json:"branch"`
	Date             string          `json:"date"`
	RelatedPOs       []PurchaseOrder `json:"related_pos"`
	Metrics          AnomalyMetrics  `json:"metrics"`
	SuggestedActions []string        `json:"suggested_actions"`
}

// AnomalyMetrics 异常的量化指标
type AnomalyMetrics struct {
	CurrentValue  float64 `json:"current_value"`
	ExpectedValue float64 `json:"expected_value"`
	Deviation     float64 `json:"deviation"`
	Unit          string  `json:"unit"`
}

// 趋势异常类型常量
const (
	TrendAnomalyPriceDeviation = "price_deviation"
	TrendAnomalyLargeOrder     = "large_order"
	TrendAnomalyDuplicateOrder = "duplicate_order"
	TrendAnomalyHighVolumeDay  = "high_volume_day"
)
