package trend

import (
	"sort"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// 订单节奏分类阈值（平均下单间隔天数，开区间上界）
const (
	cadenceWeeklyMaxDays    = 10
	cadenceMonthlyMaxDays   = 35
	cadenceQuarterlyMaxDays = 100
)

// AnalyzeSupplierTrends 逐供应商计算费率画像与下单节奏
// 波动率为 stddev/mean，均值为 0 时返回无效比值（调用方按"不适用"处理）
// 结果按供应商名称升序排列
func (a *Analyzer) AnalyzeSupplierTrends(orders []model.PurchaseOrder) []model.SupplierTrend {
	orders = analysis.NormalizeOrders(orders)

	groups := make(map[string][]model.PurchaseOrder)
	for _, po := range orders {
		groups[po.Supplier] = append(groups[po.Supplier], po)
	}

	result := make([]model.SupplierTrend, 0, len(groups))
	for supplier, group := range groups {
		rates := make([]float64, 0, len(group))
		for _, po := range group {
			rates = append(rates, po.Rate)
		}

		result = append(result, model.SupplierTrend{
			Supplier:       supplier,
			OrderCount:     len(group),
			AverageRate:    analysis.Mean(rates),
			RateVolatility: analysis.CoefficientOfVariation(rates),
			OrderFrequency: classifyOrderFrequency(group),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Supplier < result[j].Supplier
	})
	return result
}

// classifyOrderFrequency 按平均下单间隔分类供应商的下单节奏
// 日期按降序排列后计算相邻间隔的平均天数
// 可解析日期不足两条时没有间隔样本，归为 irregular
func classifyOrderFrequency(group []model.PurchaseOrder) string {
	dates := make([]int64, 0, len(group))
	for _, po := range group {
		if t, ok := analysis.ParseOrderDate(po.Date); ok {
			dates = append(dates, t.Unix())
		}
	}
	if len(dates) < 2 {
		return model.FrequencyIrregular
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i] > dates[j] })

	totalGapDays := 0.0
	for i := 0; i < len(dates)-1; i++ {
		totalGapDays += float64(dates[i]-dates[i+1]) / 86400
	}
	avgGapDays := totalGapDays / float64(len(dates)-1)

	switch {
	case avgGapDays < cadenceWeeklyMaxDays:
		return model.FrequencyWeekly
	case avgGapDays < cadenceMonthlyMaxDays:
		return model.FrequencyMonthly
	case avgGapDays < cadenceQuarterlyMaxDays:
		return model.FrequencyQuarterly
	default:
		return model.FrequencyIrregular
	}
}
