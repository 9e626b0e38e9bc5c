// Package analysis 提供采购订单分析引擎的公共纯函数
// 归一化、日期解析、周期键推导与统计计算，均不做任何 I/O
package analysis

import (
	"strings"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// NormalizeOrder 归一化单条订单
// 缺失的供应商/类目统一替换为哨兵默认值，其余字段原样保留
func NormalizeOrder(po model.PurchaseOrder) model.PurchaseOrder {
	if strings.TrimSpace(po.Supplier) == "" {
		po.Supplier = model.DefaultSupplier
	}
	if strings.TrimSpace(po.ItemLedgerGroup) == "" {
		po.ItemLedgerGroup = model.DefaultCategory
	}
	return po
}

// NormalizeOrders 归一化订单集合
// 返回新切片，不修改入参（分析函数的输入是只读的）
func NormalizeOrders(orders []model.PurchaseOrder) []model.PurchaseOrder {
	result := make([]model.PurchaseOrder, len(orders))
	for i, po := range orders {
		result[i] = NormalizeOrder(po)
	}
	return result
}
