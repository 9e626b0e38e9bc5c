package report

import (
	"sort"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// AnalyzeSpendByCategory 按类目汇总支出
// 缺失类目归入 Uncategorized；百分比基于全部订单金额，合计为 100
// 结果按金额降序排列（并列时按类目名升序，保证确定性）
func (a *Aggregator) AnalyzeSpendByCategory(orders []model.PurchaseOrder) []model.SpendByCategory {
	orders = analysis.NormalizeOrders(orders)

	type bucket struct {
		amount float64
		count  int
	}
	buckets := make(map[string]*bucket)
	grandTotal := 0.0
	for _, po := range orders {
		b := buckets[po.ItemLedgerGroup]
		if b == nil {
			b = &bucket{}
			buckets[po.ItemLedgerGroup] = b
		}
		b.amount += po.TotalAmount
		b.count++
		grandTotal += po.TotalAmount
	}

	result := make([]model.SpendByCategory, 0, len(buckets))
	for category, b := range buckets {
		percentage := 0.0
		if grandTotal != 0 {
			percentage = b.amount / grandTotal * 100
		}
		result = append(result, model.SpendByCategory{
			Category:    category,
			TotalAmount: b.amount,
			OrderCount:  b.count,
			Percentage:  percentage,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalAmount != result[j].TotalAmount {
			return result[i].TotalAmount > result[j].TotalAmount
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// AnalyzeSpendBySupplier 按供应商汇总支出
// limit 非正数时使用默认值 20；结果按金额降序截断到 limit
func (a *Aggregator) AnalyzeSpendBySupplier(orders []model.PurchaseOrder, limit int) []model.SpendBySupplier {
	if limit <= 0 {
		limit = DefaultSupplierLimit
	}
	orders = analysis.NormalizeOrders(orders)

	type bucket struct {
		amount float64
		count  int
	}
	buckets := make(map[string]*bucket)
	grandTotal := 0.0
	for _, po := range orders {
		b := buckets[po.Supplier]
		if b == nil {
			b = &bucket{}
			buckets[po.Supplier] = b
		}
		b.amount += po.TotalAmount
		b.count++
		grandTotal += po.TotalAmount
	}

	result := make([]model.SpendBySupplier, 0, len(buckets))
	for supplier, b := range buckets {
		percentage := 0.0
		if grandTotal != 0 {
			percentage = b.amount / grandTotal * 100
		}
		result = append(result, model.SpendBySupplier{
			Supplier:    supplier,
			TotalAmount: b.amount,
			OrderCount:  b.count,
			Percentage:  percentage,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalAmount != result[j].TotalAmount {
			return result[i].TotalAmount > result[j].TotalAmount
		}
		return result[i].Supplier < result[j].Supplier
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// AnalyzeSpendTrend 支出时间序列
// interval 为 quarterly 时按季度分桶（YYYY-Qn），否则按月（YYYY-MM）
// 日期解析失败的订单被丢弃；周期键零填充，字典序即时间序
func (a *Aggregator) AnalyzeSpendTrend(orders []model.PurchaseOrder, interval string) []model.SpendTrendPoint {
	type bucket struct {
		amount float64
		count  int
	}
	buckets := make(map[string]*bucket)
	for _, po := range orders {
		t, ok := analysis.ParseOrderDate(po.Date)
		if !ok {
			continue
		}

		var key string
		if interval == model.PeriodQuarterly {
			key = analysis.QuarterKey(t)
		} else {
			key = analysis.MonthKey(t)
		}

		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.amount += po.TotalAmount
		b.count++
	}

	result := make([]model.SpendTrendPoint, 0, len(buckets))
	for period, b := range buckets {
		result = append(result, model.SpendTrendPoint{
			Period:      period,
			TotalAmount: b.amount,
			OrderCount:  b.count,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})
	return result
}

// AnalyzePOVolume 月度订单量与金额
func (a *Aggregator) AnalyzePOVolume(orders []model.PurchaseOrder) []model.POVolumePoint {
	type bucket struct {
		amount float64
		count  int
	}
	buckets := make(map[string]*bucket)
	for _, po := range orders {
		t, ok := analysis.ParseOrderDate(po.Date)
		if !ok {
			continue
		}
		key := analysis.MonthKey(t)

		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.amount += po.TotalAmount
		b.count++
	}

	result := make([]model.POVolumePoint, 0, len(buckets))
	for period, b := range buckets {
		result = append(result, model.POVolumePoint{
			Period:      period,
			OrderCount:  b.count,
			TotalAmount: b.amount,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})
	return result
}

// CalculateAveragePOValue 平均订单金额及其变化
// 订单按时间升序排列后从中点一分为二：current 为后半段均值，
// trend 为前半段到后半段的百分比变化；空输入返回 {0, 0}
func (a *Aggregator) CalculateAveragePOValue(orders []model.PurchaseOrder) model.AveragePOValue {
	if len(orders) == 0 {
		return model.AveragePOValue{}
	}

	sorted := make([]model.PurchaseOrder, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := analysis.ParseOrderDate(sorted[i].Date)
		tj, _ := analysis.ParseOrderDate(sorted[j].Date)
		// 解析失败的日期为零值，排在最前
		return ti.Before(tj)
	})

	mid := len(sorted) / 2
	firstAmounts := make([]float64, 0, mid)
	secondAmounts := make([]float64, 0, len(sorted)-mid)
	for i, po := range sorted {
		if i < mid {
			firstAmounts = append(firstAmounts, po.TotalAmount)
		} else {
			secondAmounts = append(secondAmounts, po.TotalAmount)
		}
	}

	current := analysis.Mean(secondAmounts)
	firstAvg := analysis.Mean(firstAmounts)

	trend := 0.0
	if firstAvg != 0 {
		trend = (current - firstAvg) / firstAvg * 100
	}

	return model.AveragePOValue{
		Current: current,
		Trend:   trend,
	}
}
