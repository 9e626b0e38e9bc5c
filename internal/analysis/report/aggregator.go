// Package report 实现已批准订单集的支出、绩效与集中度聚合
// 每个聚合函数可独立调用，均为纯函数，空输入返回空结果而非错误
package report

// DefaultSupplierLimit 供应商支出榜单的默认截断长度
const DefaultSupplierLimit = 20

// Aggregator 报表聚合器（纯函数，无状态）
type Aggregator struct{}

// NewAggregator 创建报表聚合器实例
func NewAggregator() *Aggregator {
	return &Aggregator{}
}
