// Package anomaly 实现待审批订单的异常与风险检测
// 将一批待审批订单与历史已批准订单对比，输出逐单的异常标记
package anomaly

import (
	"fmt"
	"math"
	"strings"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// 价格偏差阈值（百分比，均为开区间下界：正好等于阈值不触发）
const (
	priceMediumThreshold   = 20
	priceHighThreshold     = 35
	priceCriticalThreshold = 50
)

// 其余检测阈值
const (
	patternMinHistoryCount = 5      // 供应商模式检测要求的历史订单数（严格大于）
	patternDiffThreshold   = 100    // 金额偏差百分比（严格大于）
	highValueThreshold     = 500000 // 高额订单金额（严格大于）
	rateIncreaseFactor     = 1.1    // 费率上涨容忍系数（严格大于）
)

// Detector 异常检测器（规则引擎，纯函数，无状态）
type Detector struct{}

// NewDetector 创建异常检测器实例
func NewDetector() *Detector {
	return &Detector{}
}

// AnalyzeOrders 对每条待审批订单执行四项独立检测并拼接结果
// 单条订单可能产生零条、一条或多条不同类型的结果
// 全量函数：数据缺失降级为低/中级别的提示性结果，不抛错
func (d *Detector) AnalyzeOrders(pending, historical []model.PurchaseOrder) []model.AnalysisResult {
	pending = analysis.NormalizeOrders(pending)
	historical = analysis.NormalizeOrders(historical)

	results := make([]model.AnalysisResult, 0)
	for _, po := range pending {
		results = append(results, d.checkPriceAnomaly(po, historical)...)
		results = append(results, d.checkDuplicates(po, pending)...)
		results = append(results, d.checkSupplierPattern(po, historical)...)
		results = append(results, d.checkRiskFlags(po, historical)...)
	}
	return results
}

// checkPriceAnomaly 价格异常检测
// 历史匹配采用双向大小写不敏感子串匹配，有意放宽以捕捉近似重名的物料
func (d *Detector) checkPriceAnomaly(po model.PurchaseOrder, historical []model.PurchaseOrder) []model.AnalysisResult {
	rates := make([]float64, 0)
	for _, h := range historical {
		if itemBaselineMatch(po.Item, h.Item) {
			rates = append(rates, h.Rate)
		}
	}

	if len(rates) == 0 {
		return []model.AnalysisResult{{
			Type:     model.ResultTypePriceAnomaly,
			Severity: model.SeverityLow,
			Message:  fmt.Sprintf("No historical baseline found for item %q", po.Item),
			POID:     po.ID,
			Details: map[string]interface{}{
				"reason": model.ReasonNoBaseline,
				"item":   po.Item,
			},
		}}
	}

	avgRate := analysis.Mean(rates)
	if avgRate == 0 {
		return []model.AnalysisResult{{
			Type:     model.ResultTypePriceAnomaly,
			Severity: model.SeverityMedium,
			Message:  fmt.Sprintf("Historical average rate for item %q is zero, cannot compare", po.Item),
			POID:     po.ID,
			Details: map[string]interface{}{
				"reason":       model.ReasonZeroBaseline,
				"item":         po.Item,
				"sample_count": len(rates),
			},
		}}
	}

	percentDiff := math.Abs(po.Rate-avgRate) / avgRate * 100

	var severity string
	switch {
	case percentDiff > priceCriticalThreshold:
		severity = model.SeverityCritical
	case percentDiff > priceHighThreshold:
		severity = model.SeverityHigh
	case percentDiff > priceMediumThreshold:
		severity = model.SeverityMedium
	default:
		return nil
	}

	return []model.AnalysisResult{{
		Type:     model.ResultTypePriceAnomaly,
		Severity: severity,
		Message: fmt.Sprintf("Rate %.2f deviates %.2f%% from historical average %.2f for item %q",
			po.Rate, percentDiff, avgRate, po.Item),
		POID: po.ID,
		Details: map[string]interface{}{
			"rate":         po.Rate,
			"average_rate": avgRate,
			"percent_diff": percentDiff,
			"sample_count": len(rates),
		},
	}}
}

// checkDuplicates 批次内重复检测
// 同批次中存在 orderNo+supplier+item 三者相同的其他订单即标记
// 检测是对称的：A 标记 B 时，B 也会标记 A
func (d *Detector) checkDuplicates(po model.PurchaseOrder, pending []model.PurchaseOrder) []model.AnalysisResult {
	duplicateIDs := make([]string, 0)
	for _, other := range pending {
		if other.ID == po.ID {
			continue
		}
		if other.OrderNo == po.OrderNo && other.Supplier == po.Supplier && other.Item == po.Item {
			duplicateIDs = append(duplicateIDs, other.ID)
		}
	}

	if len(duplicateIDs) == 0 {
		return nil
	}

	return []model.AnalysisResult{{
		Type:     model.ResultTypeDuplicate,
		Severity: model.SeverityHigh,
		Message: fmt.Sprintf("Order no %q shares supplier and item with %d other pending order(s)",
			po.OrderNo, len(duplicateIDs)),
		POID: po.ID,
		Details: map[string]interface{}{
			"order_no":      po.OrderNo,
			"duplicate_ids": duplicateIDs,
		},
	}}
}

// checkSupplierPattern 供应商下单模式检测
// 仅当该供应商历史订单超过 5 条时运行，前置条件不满足时静默跳过
// 金额偏差超过 100%（即超过两倍或不足一半）时标记
func (d *Detector) checkSupplierPattern(po model.PurchaseOrder, historical []model.PurchaseOrder) []model.AnalysisResult {
	amounts := make([]float64, 0)
	for _, h := range historical {
		if h.Supplier == po.Supplier {
			amounts = append(amounts, h.TotalAmount)
		}
	}
	if len(amounts) <= patternMinHistoryCount {
		return nil
	}

	avgAmount := analysis.Mean(amounts)
	if avgAmount == 0 {
		return nil
	}

	percentDiff := (po.TotalAmount - avgAmount) / avgAmount * 100
	if math.Abs(percentDiff) <= patternDiffThreshold {
		return nil
	}

	return []model.AnalysisResult{{
		Type:     model.ResultTypePattern,
		Severity: model.SeverityMedium,
		Message: fmt.Sprintf("Amount %.2f differs %.2f%% from supplier %q average %.2f",
			po.TotalAmount, percentDiff, po.Supplier, avgAmount),
		POID: po.ID,
		Details: map[string]interface{}{
			"amount":         po.TotalAmount,
			"average_amount": avgAmount,
			"percent_diff":   percentDiff,
			"history_count":  len(amounts),
		},
	}}
}

// checkRiskFlags 风险标记检测（三项相互独立，可同时触发）
func (d *Detector) checkRiskFlags(po model.PurchaseOrder, historical []model.PurchaseOrder) []model.AnalysisResult {
	results := make([]model.AnalysisResult, 0)

	// 1. 新供应商：历史集中不存在该供应商
	known := false
	for _, h := range historical {
		if h.Supplier == po.Supplier {
			known = true
			break
		}
	}
	if !known {
		results = append(results, model.AnalysisResult{
			Type:     model.ResultTypeRiskFlag,
			Severity: model.SeverityMedium,
			Message:  fmt.Sprintf("Supplier %q has no approved order history (new/unverified supplier)", po.Supplier),
			POID:     po.ID,
			Details: map[string]interface{}{
				"reason":   "new_supplier",
				"supplier": po.Supplier,
			},
		})
	}

	// 2. 高额订单：金额严格大于 500000（正好等于不触发）
	if po.TotalAmount > highValueThreshold {
		results = append(results, model.AnalysisResult{
			Type:     model.ResultTypeRiskFlag,
			Severity: model.SeverityHigh,
			Message:  fmt.Sprintf("High-value order: amount %.2f exceeds %d", po.TotalAmount, highValueThreshold),
			POID:     po.ID,
			Details: map[string]interface{}{
				"reason": "high_value",
				"amount": po.TotalAmount,
			},
		})
	}

	// 3. 费率上涨：超过上次批准费率的 110%（正好 10% 不触发）
	if po.LastApprovedRate > 0 && po.Rate > po.LastApprovedRate*rateIncreaseFactor {
		increase := (po.Rate - po.LastApprovedRate) / po.LastApprovedRate * 100
		results = append(results, model.AnalysisResult{
			Type:     model.ResultTypeRiskFlag,
			Severity: model.SeverityMedium,
			Message: fmt.Sprintf("Rate increased %.2f%% over last approved rate %.2f",
				increase, po.LastApprovedRate),
			POID: po.ID,
			Details: map[string]interface{}{
				"reason":             "rate_increase",
				"rate":               po.Rate,
				"last_approved_rate": po.LastApprovedRate,
				"percent_increase":   increase,
			},
		})
	}

	return results
}

// itemBaselineMatch 双向子串匹配（大小写不敏感）
func itemBaselineMatch(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
