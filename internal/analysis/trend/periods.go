package trend

import (
	"sort"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// AnalyzePeriodTrends 将订单按周期分桶并计算各周期指标
// periodType 为 weekly 时周期键为 ISO 周起始日，否则按月（YYYY-MM）
// 日期解析失败的订单被静默排除；返回结果按周期键升序排列
func (a *Analyzer) AnalyzePeriodTrends(orders []model.PurchaseOrder, periodType string) []model.TrendMetrics {
	orders = analysis.NormalizeOrders(orders)

	buckets := make(map[string][]model.PurchaseOrder)
	for _, po := range orders {
		t, ok := analysis.ParseOrderDate(po.Date)
		if !ok {
			continue
		}

		var key string
		if periodType == model.PeriodWeekly {
			key = analysis.WeekStartKey(t)
		} else {
			key = analysis.MonthKey(t)
		}
		buckets[key] = append(buckets[key], po)
	}

	result := make([]model.TrendMetrics, 0, len(buckets))
	for period, group := range buckets {
		result = append(result, buildPeriodMetrics(period, group))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})
	return result
}

// buildPeriodMetrics 计算单个周期桶的指标
func buildPeriodMetrics(period string, group []model.PurchaseOrder) model.TrendMetrics {
	totalAmount := 0.0
	suppliers := make(map[string]struct{})
	branches := make(map[string]struct{})
	categoryCounts := make(map[string]int)

	for _, po := range group {
		totalAmount += po.TotalAmount
		suppliers[po.Supplier] = struct{}{}
		if po.Branch != "" {
			branches[po.Branch] = struct{}{}
		}
		categoryCounts[po.ItemLedgerGroup]++
	}

	// 出现频次最高的类目；并列时取决于 map 遍历顺序，不作约定
	topCategory := ""
	topCount := 0
	for category, count := range categoryCounts {
		if count > topCount {
			topCategory = category
			topCount = count
		}
	}

	branchList := make([]string, 0, len(branches))
	for branch := range branches {
		branchList = append(branchList, branch)
	}
	sort.Strings(branchList)

	return model.TrendMetrics{
		Period:        period,
		OrderCount:    len(group),
		TotalAmount:   totalAmount,
		AverageValue:  totalAmount / float64(len(group)),
		SupplierCount: len(suppliers),
		TopCategory:   topCategory,
		Branches:      branchList,
	}
}
