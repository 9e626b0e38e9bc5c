package model

// SpendByCategory 按类目汇总的支出
type SpendByCategory struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
	OrderCount  int     `json:"order_count"`
	Percentage  float64 `json:"percentage"` // 占全部支出的百分比
}

// SpendBySupplier 按供应商汇总的支出
type SpendBySupplier struct {
	Supplier    string  `json:"supplier"`
	TotalAmount float64 `json:"total_amount"`
	OrderCount  int     `json:"order_count"`
	Percentage  float64 `json:"percentage"`
}

// SpendTrendPoint 支出时间序列上的一个周期点
type SpendTrendPoint struct {
	Period      string  `json:"period"` // YYYY-MM 或 YYYY-Qn
	TotalAmount float64 `json:"total_amount"`
	OrderCount  int     `json:"order_count"`
}

// SupplierPerformance 供应商交付与价格表现
type SupplierPerformance struct {
	Supplier        string  `json:"supplier"`
	OrderCount      int     `json:"order_count"`
	MeasuredLeads   int     `json:"measured_leads"` // 可计算交期的订单数
	AvgLeadTimeDays float64 `json:"avg_lead_time_days"`
	OnTimeRate      float64 `json:"on_time_rate"`   // 交期 ≤30 天的占比（百分比）
	PriceVariance   Ratio   `json:"price_variance"` // stddev/mean×100，均值为 0 时无效
}

// POVolumePoint 月度订单量
type POVolumePoint struct {
	Period      string  `json:"period"` // YYYY-MM
	OrderCount  int     `json:"order_count"`
	TotalAmount float64 `json:"total_amount"`
}

// RiskData 供应商集中度风险
type RiskData struct {
	Supplier          string   `json:"supplier"`
	TotalSpend        float64  `json:"total_spend"`
	OrderCount        int      `json:"order_count"`
	Concentration     float64  `json:"concentration"` // 占总支出的百分比
	SingleSourceItems []string `json:"single_source_items,omitempty"`
}

// AveragePOValue 平均订单金额及其变化趋势
type AveragePOValue struct {
	Current float64 `json:"current"` // 后半段订单的平均金额
	Trend   float64 `json:"trend"`   // 相对前半段的百分比变化
}
