package report

import (
	"sort"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// AnalyzeSupplierConcentration 供应商集中度与单一来源物料
// 集中度 = 供应商支出 / 总支出 × 100
// 单一来源物料：整个订单集中只从一个供应商采购过的物料，归入该供应商条目
// 结果按集中度降序排列
func (a *Aggregator) AnalyzeSupplierConcentration(orders []model.PurchaseOrder) []model.RiskData {
	orders = analysis.NormalizeOrders(orders)

	type bucket struct {
		spend float64
		count int
	}
	buckets := make(map[string]*bucket)
	totalSpend := 0.0
	itemSuppliers := make(map[string]map[string]struct{})

	for _, po := range orders {
		b := buckets[po.Supplier]
		if b == nil {
			b = &bucket{}
			buckets[po.Supplier] = b
		}
		b.spend += po.TotalAmount
		b.count++
		totalSpend += po.TotalAmount

		if po.Item != "" {
			if itemSuppliers[po.Item] == nil {
				itemSuppliers[po.Item] = make(map[string]struct{})
			}
			itemSuppliers[po.Item][po.Supplier] = struct{}{}
		}
	}

	// 单一来源物料归属
	singleSource := make(map[string][]string)
	for item, suppliers := range itemSuppliers {
		if len(suppliers) != 1 {
			continue
		}
		for supplier := range suppliers {
			singleSource[supplier] = append(singleSource[supplier], item)
		}
	}
	for _, items := range singleSource {
		sort.Strings(items)
	}

	result := make([]model.RiskData, 0, len(buckets))
	for supplier, b := range buckets {
		concentration := 0.0
		if totalSpend != 0 {
			concentration = b.spend / totalSpend * 100
		}
		result = append(result, model.RiskData{
			Supplier:          supplier,
			TotalSpend:        b.spend,
			OrderCount:        b.count,
			Concentration:     concentration,
			SingleSourceItems: singleSource[supplier],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Concentration != result[j].Concentration {
			return result[i].Concentration > result[j].Concentration
		}
		return result[i].Supplier < result[j].Supplier
	})
	return result
}
