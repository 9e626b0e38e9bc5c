package report

import (
	"sort"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// 供应商绩效阈值
const (
	performanceMinOrders = 3  // 少于 3 单的供应商不进入结果
	onTimeLeadDays       = 30 // 交期 ≤30 天视为准时
)

// AnalyzeSupplierPerformance 逐供应商计算交付与价格表现
// 交期 = deliveryDate − date（天），任一日期解析失败则该单不计入交期样本
// 价格方差为 stddev/mean×100；结果按订单数降序排列
func (a *Aggregator) AnalyzeSupplierPerformance(orders []model.PurchaseOrder) []model.SupplierPerformance {
	orders = analysis.NormalizeOrders(orders)

	groups := make(map[string][]model.PurchaseOrder)
	for _, po := range orders {
		groups[po.Supplier] = append(groups[po.Supplier], po)
	}

	result := make([]model.SupplierPerformance, 0, len(groups))
	for supplier, group := range groups {
		if len(group) < performanceMinOrders {
			continue
		}

		rates := make([]float64, 0, len(group))
		leadDays := make([]float64, 0, len(group))
		onTime := 0
		for _, po := range group {
			rates = append(rates, po.Rate)

			ordered, okOrder := analysis.ParseOrderDate(po.Date)
			delivered, okDelivery := analysis.ParseOrderDate(po.DeliveryDate)
			if !okOrder || !okDelivery {
				continue
			}
			days := delivered.Sub(ordered).Hours() / 24
			leadDays = append(leadDays, days)
			if days <= onTimeLeadDays {
				onTime++
			}
		}

		onTimeRate := 0.0
		if len(leadDays) > 0 {
			onTimeRate = float64(onTime) / float64(len(leadDays)) * 100
		}

		variance := analysis.CoefficientOfVariation(rates)
		if variance.Valid {
			variance.Value *= 100
		}

		result = append(result, model.SupplierPerformance{
			Supplier:        supplier,
			OrderCount:      len(group),
			MeasuredLeads:   len(leadDays),
			AvgLeadTimeDays: analysis.Mean(leadDays),
			OnTimeRate:      onTimeRate,
			PriceVariance:   variance,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].OrderCount != result[j].OrderCount {
			return result[i].OrderCount > result[j].OrderCount
		}
		return result[i].Supplier < result[j].Supplier
	})
	return result
}
