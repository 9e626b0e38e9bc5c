// Package trend 实现订单集的时间趋势与供应商行为分析
// 输入为历史与待审批订单的合并集合，三个入口相互独立
package trend

// Analyzer 趋势分析器（纯函数，无状态）
type Analyzer struct{}

// NewAnalyzer 创建趋势分析器实例
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}
