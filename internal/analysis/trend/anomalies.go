package trend

import (
	"fmt"
	"sort"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// 趋势异常检测阈值
const (
	priceDeviationMinSamples = 2       // (supplier,item) 基线最小样本数
	priceDeviationThreshold  = 30      // 偏差百分比（严格大于）
	priceDeviationHighLevel  = 50      // 高级别偏差百分比
	largeOrderMinSamples     = 3       // 大额订单基线最小样本数（严格大于）
	largeOrderFactor         = 3.0     // 金额超过均值倍数
	largeOrderHighFactor     = 5.0     // 高级别倍数
	highVolumeDayMinOrders   = 10      // 单日订单数（严格大于）
	highVolumeDayMinAmount   = 1000000 // 单日合计金额（严格大于）
	highVolumeDayHighAmount  = 5000000 // 高级别单日合计金额
)

// IdentifyDetailedAnomalies 对合并订单集执行四类异常检测
// 基线使用原始订单数据（不按日期过滤）；结果按严重级别 high→medium→low 排序
func (a *Analyzer) IdentifyDetailedAnomalies(orders []model.PurchaseOrder) []model.TrendAnomaly {
	orders = analysis.NormalizeOrders(orders)

	anomalies := make([]model.TrendAnomaly, 0)
	anomalies = append(anomalies, detectPriceDeviations(orders)...)
	anomalies = append(anomalies, detectLargeOrders(orders)...)
	anomalies = append(anomalies, detectDuplicateGroups(orders)...)
	anomalies = append(anomalies, detectHighVolumeDays(orders)...)

	sort.SliceStable(anomalies, func(i, j int) bool {
		return model.SeverityRank(anomalies[i].Severity) < model.SeverityRank(anomalies[j].Severity)
	})
	return anomalies
}

// pairKey (supplier, item) 基线分组键
func pairKey(po model.PurchaseOrder) string {
	return po.Supplier + "|" + po.Item
}

// groupByPair 按 (supplier, item) 分组
func groupByPair(orders []model.PurchaseOrder) map[string][]model.PurchaseOrder {
	groups := make(map[string][]model.PurchaseOrder)
	for _, po := range orders {
		groups[pairKey(po)] = append(groups[pairKey(po)], po)
	}
	return groups
}

// detectPriceDeviations 价格偏离 (supplier,item) 基线的订单
// 基线要求至少 2 个样本；仅输出有限偏差（均值为 0 时跳过）
func detectPriceDeviations(orders []model.PurchaseOrder) []model.TrendAnomaly {
	anomalies := make([]model.TrendAnomaly, 0)

	for _, group := range groupByPair(orders) {
		if len(group) < priceDeviationMinSamples {
			continue
		}

		rates := make([]float64, 0, len(group))
		for _, po := range group {
			rates = append(rates, po.Rate)
		}
		meanRate := analysis.Mean(rates)

		for _, po := range group {
			deviation := analysis.PercentDiff(po.Rate, meanRate)
			if !deviation.Valid {
				continue
			}
			absDev := deviation.Value
			if absDev < 0 {
				absDev = -absDev
			}
			if absDev <= priceDeviationThreshold {
				continue
			}

			severity := model.SeverityMedium
			if absDev > priceDeviationHighLevel {
				severity = model.SeverityHigh
			}

			anomalies = append(anomalies, model.TrendAnomaly{
				Type:     model.TrendAnomalyPriceDeviation,
				Severity: severity,
				Description: fmt.Sprintf("Rate %.2f deviates %.1f%% from the average %.2f for this supplier-item pair",
					po.Rate, deviation.Value, meanRate),
				ItemName:   po.Item,
				Category:   po.ItemLedgerGroup,
				Supplier:   po.Supplier,
				Branch:     po.Branch,
				Date:       po.Date,
				RelatedPOs: []model.PurchaseOrder{po},
				Metrics: model.AnomalyMetrics{
					CurrentValue:  po.Rate,
					ExpectedValue: meanRate,
					Deviation:     deviation.Value,
					Unit:          "%",
				},
				SuggestedActions: []string{
					"Verify the quoted rate with the supplier",
					"Compare against recent approved orders for the same item",
				},
			})
		}
	}
	return anomalies
}

// detectLargeOrders 金额异常偏大的订单
// 基线要求超过 3 个样本；金额超过组均值 3 倍时标记，超过 5 倍为 high
func detectLargeOrders(orders []model.PurchaseOrder) []model.TrendAnomaly {
	anomalies := make([]model.TrendAnomaly, 0)

	for _, group := range groupByPair(orders) {
		if len(group) <= largeOrderMinSamples {
			continue
		}

		amounts := make([]float64, 0, len(group))
		for _, po := range group {
			amounts = append(amounts, po.TotalAmount)
		}
		avgAmount := analysis.Mean(amounts)
		if avgAmount <= 0 {
			continue
		}

		for _, po := range group {
			if po.TotalAmount <= largeOrderFactor*avgAmount {
				continue
			}
			ratio := po.TotalAmount / avgAmount

			severity := model.SeverityMedium
			if ratio > largeOrderHighFactor {
				severity = model.SeverityHigh
			}

			anomalies = append(anomalies, model.TrendAnomaly{
				Type:     model.TrendAnomalyLargeOrder,
				Severity: severity,
				Description: fmt.Sprintf("Amount %.2f is %.1fx the average %.2f for this supplier-item pair",
					po.TotalAmount, ratio, avgAmount),
				ItemName:   po.Item,
				Category:   po.ItemLedgerGroup,
				Supplier:   po.Supplier,
				Branch:     po.Branch,
				Date:       po.Date,
				RelatedPOs: []model.PurchaseOrder{po},
				Metrics: model.AnomalyMetrics{
					CurrentValue:  po.TotalAmount,
					ExpectedValue: avgAmount,
					Deviation:     ratio,
					Unit:          "x",
				},
				SuggestedActions: []string{
					"Confirm the ordered quantity before approval",
					"Check whether the order consolidates multiple requests",
				},
			})
		}
	}
	return anomalies
}

// detectDuplicateGroups 疑似重复下单
// 按 (date, supplier, item) 分组，组内超过一条即对该组标记一次
func detectDuplicateGroups(orders []model.PurchaseOrder) []model.TrendAnomaly {
	groups := make(map[string][]model.PurchaseOrder)
	keys := make([]string, 0)
	for _, po := range orders {
		key := po.Date + "|" + po.Supplier + "|" + po.Item
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], po)
	}
	sort.Strings(keys)

	anomalies := make([]model.TrendAnomaly, 0)
	for _, key := range keys {
		group := groups[key]
		if len(group) < 2 {
			continue
		}

		first := group[0]
		totalAmount := 0.0
		for _, po := range group {
			totalAmount += po.TotalAmount
		}

		anomalies = append(anomalies, model.TrendAnomaly{
			Type:     model.TrendAnomalyDuplicateOrder,
			Severity: model.SeverityMedium,
			Description: fmt.Sprintf("%d orders for item %q from supplier %q on the same date",
				len(group), first.Item, first.Supplier),
			ItemName:   first.Item,
			Category:   first.ItemLedgerGroup,
			Supplier:   first.Supplier,
			Branch:     first.Branch,
			Date:       first.Date,
			RelatedPOs: group,
			Metrics: model.AnomalyMetrics{
				CurrentValue:  float64(len(group)),
				ExpectedValue: 1,
				Deviation:     totalAmount,
				Unit:          "orders",
			},
			SuggestedActions: []string{
				"Review whether the orders are intentional split deliveries",
				"Cancel redundant orders before approval",
			},
		})
	}
	return anomalies
}

// detectHighVolumeDays 单日单供应商的异常放量
// 同一天同一供应商订单数超过 10 且合计金额超过 1,000,000 时标记
func detectHighVolumeDays(orders []model.PurchaseOrder) []model.TrendAnomaly {
	groups := make(map[string][]model.PurchaseOrder)
	keys := make([]string, 0)
	for _, po := range orders {
		key := po.Date + "|" + po.Supplier
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], po)
	}
	sort.Strings(keys)

	anomalies := make([]model.TrendAnomaly, 0)
	for _, key := range keys {
		group := groups[key]
		if len(group) <= highVolumeDayMinOrders {
			continue
		}

		totalAmount := 0.0
		for _, po := range group {
			totalAmount += po.TotalAmount
		}
		if totalAmount <= highVolumeDayMinAmount {
			continue
		}

		severity := model.SeverityMedium
		if totalAmount > highVolumeDayHighAmount {
			severity = model.SeverityHigh
		}

		first := group[0]
		anomalies = append(anomalies, model.TrendAnomaly{
			Type:     model.TrendAnomalyHighVolumeDay,
			Severity: severity,
			Description: fmt.Sprintf("Supplier %q placed %d orders totalling %.2f on %s",
				first.Supplier, len(group), totalAmount, first.Date),
			Supplier:   first.Supplier,
			Branch:     first.Branch,
			Date:       first.Date,
			RelatedPOs: group,
			Metrics: model.AnomalyMetrics{
				CurrentValue:  totalAmount,
				ExpectedValue: highVolumeDayMinAmount,
				Deviation:     float64(len(group)),
				Unit:          "amount",
			},
			SuggestedActions: []string{
				"Verify the batch with the requesting branch",
				"Check for bulk upload mistakes",
			},
		})
	}
	return anomalies
}
