package analysis

import (
	"math"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// Mean 计算均值，空切片返回 0
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev 计算总体标准差，空切片返回 0
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// CoefficientOfVariation 计算变异系数（stddev/mean）
// 均值为 0 时比值无意义，返回 NotApplicable 而不是 Inf
func CoefficientOfVariation(values []float64) model.Ratio {
	mean := Mean(values)
	if mean == 0 {
		return model.NotApplicable()
	}
	return model.FiniteRatio(StdDev(values) / mean)
}

// PercentDiff 计算 value 相对 baseline 的百分比偏差（带符号）
// baseline 为 0 时无意义，返回 NotApplicable
func PercentDiff(value, baseline float64) model.Ratio {
	if baseline == 0 {
		return model.NotApplicable()
	}
	return model.FiniteRatio((value - baseline) / baseline * 100)
}
