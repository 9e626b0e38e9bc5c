package report

import (
	"math"
	"testing"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

func orderWith(supplier, item, category, date string, amount float64) model.PurchaseOrder {
	return model.PurchaseOrder{
		Supplier:        supplier,
		Item:            item,
		ItemLedgerGroup: category,
		Date:            date,
		TotalAmount:     amount,
		IsApproved:      true,
	}
}

func TestAnalyzeSpendByCategory(t *testing.T) {
	a := NewAggregator()
	orders := []model.PurchaseOrder{
		orderWith("S1", "I1", "Steel", "2024-01-01", 600),
		orderWith("S2", "I2", "Steel", "2024-01-02", 200),
		orderWith("S1", "I3", "Timber", "2024-01-03", 150),
		orderWith("S1", "I4", "", "2024-01-04", 50), // 缺失类目
	}

	result := a.AnalyzeSpendByCategory(orders)
	if len(result) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(result))
	}

	if result[0].Category != "Steel" || result[0].TotalAmount != 800 || result[0].OrderCount != 2 {
		t.Errorf("top category = %+v, want Steel/800/2", result[0])
	}
	if result[2].Category != model.DefaultCategory {
		t.Errorf("missing category should default to %s, got %s", model.DefaultCategory, result[2].Category)
	}

	// 百分比合计为 100（浮点容差内）
	sum := 0.0
	for _, r := range result {
		sum += r.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %f, want 100", sum)
	}
}

func TestAnalyzeSpendByCategory_Empty(t *testing.T) {
	a := NewAggregator()
	if result := a.AnalyzeSpendByCategory(nil); len(result) != 0 {
		t.Errorf("empty input must return empty slice, got %+v", result)
	}
}

func TestAnalyzeSpendBySupplier_Limit(t *testing.T) {
	a := NewAggregator()
	orders := []model.PurchaseOrder{
		orderWith("S1", "I1", "C", "2024-01-01", 500),
		orderWith("S2", "I1", "C", "2024-01-01", 400),
		orderWith("S3", "I1", "C", "2024-01-01", 300),
		orderWith("", "I1", "C", "2024-01-01", 200), // 缺失供应商
	}

	result := a.AnalyzeSpendBySupplier(orders, 2)
	if len(result) != 2 {
		t.Fatalf("expected limit 2, got %d entries", len(result))
	}
	if result[0].Supplier != "S1" || result[1].Supplier != "S2" {
		t.Errorf("expected descending amount order S1,S2, got %s,%s", result[0].Supplier, result[1].Supplier)
	}

	full := a.AnalyzeSpendBySupplier(orders, 0) // 非正数 → 默认 20
	if len(full) != 4 {
		t.Fatalf("expected all 4 suppliers with default limit, got %d", len(full))
	}
	if full[3].Supplier != model.DefaultSupplier {
		t.Errorf("missing supplier should default to %s, got %s", model.DefaultSupplier, full[3].Supplier)
	}
}

func TestAnalyzeSpendTrend(t *testing.T) {
	a := NewAggregator()
	orders := []model.PurchaseOrder{
		orderWith("S1", "I1", "C", "2024-03-15", 100),
		orderWith("S1", "I1", "C", "2024-01-10", 200),
		orderWith("S1", "I1", "C", "2024-01-20", 300),
		orderWith("S1", "I1", "C", "garbage", 999), // 丢弃
	}

	monthly := a.AnalyzeSpendTrend(orders, model.PeriodMonthly)
	if len(monthly) != 2 {
		t.Fatalf("expected 2 monthly points, got %d", len(monthly))
	}
	if monthly[0].Period != "2024-01" || monthly[0].TotalAmount != 500 || monthly[0].OrderCount != 2 {
		t.Errorf("first point = %+v, want 2024-01/500/2", monthly[0])
	}
	if monthly[1].Period != "2024-03" {
		t.Errorf("second point period = %s, want 2024-03 (chronological)", monthly[1].Period)
	}

	quarterly := a.AnalyzeSpendTrend(orders, model.PeriodQuarterly)
	if len(quarterly) != 1 || quarterly[0].Period != "2024-Q1" || quarterly[0].TotalAmount != 600 {
		t.Errorf("quarterly = %+v, want single 2024-Q1 with 600", quarterly)
	}
}

func TestAnalyzeSupplierPerformance(t *testing.T) {
	a := NewAggregator()

	mk := func(supplier, date, delivery string, rate float64) model.PurchaseOrder {
		po := orderWith(supplier, "I1", "C", date, 100)
		po.DeliveryDate = delivery
		po.Rate = rate
		return po
	}

	orders := []model.PurchaseOrder{
		mk("Prompt", "2024-01-01", "2024-01-11", 100), // 10 天
		mk("Prompt", "2024-02-01", "2024-02-21", 100), // 20 天
		mk("Prompt", "2024-03-01", "2024-04-15", 100), // 45 天，超期
		mk("Prompt", "2024-04-01", "", 100),           // 无交付日期，不计交期
		mk("Small", "2024-01-01", "2024-01-02", 50),
		mk("Small", "2024-02-01", "2024-02-02", 50), // 仅 2 单，排除
	}

	result := a.AnalyzeSupplierPerformance(orders)
	if len(result) != 1 {
		t.Fatalf("expected 1 supplier (fewer than 3 orders excluded), got %d", len(result))
	}

	p := result[0]
	if p.Supplier != "Prompt" || p.OrderCount != 4 {
		t.Errorf("performance = %+v", p)
	}
	if p.MeasuredLeads != 3 {
		t.Errorf("measured leads = %d, want 3 (missing delivery date skipped)", p.MeasuredLeads)
	}
	if p.AvgLeadTimeDays != 25 {
		t.Errorf("avg lead time = %f, want 25", p.AvgLeadTimeDays)
	}
	wantOnTime := 2.0 / 3.0 * 100
	if math.Abs(p.OnTimeRate-wantOnTime) > 1e-9 {
		t.Errorf("on-time rate = %f, want %f", p.OnTimeRate, wantOnTime)
	}
	if !p.PriceVariance.Valid || p.PriceVariance.Value != 0 {
		t.Errorf("price variance = %+v, want valid 0 for constant rates", p.PriceVariance)
	}
}

func TestAnalyzeSupplierPerformance_ZeroMeanRate(t *testing.T) {
	a := NewAggregator()
	orders := []model.PurchaseOrder{
		orderWith("Free", "I1", "C", "2024-01-01", 100),
		orderWith("Free", "I1", "C", "2024-02-01", 100),
		orderWith("Free", "I1", "C", "2024-03-01", 100),
	}

	result := a.AnalyzeSupplierPerformance(orders)
	if len(result) != 1 {
		t.Fatalf("expected 1 supplier, got %d", len(result))
	}
	if result[0].PriceVariance.Valid {
		t.Errorf("variance with zero mean rate must be NotApplicable, got %+v", result[0].PriceVariance)
	}
}

func TestAnalyzePOVolume(t *testing.T) {
	a := NewAggregator()
	orders := []model.PurchaseOrder{
		orderWith("S1", "I1", "C", "2024-02-10", 100),
		orderWith("S1", "I1", "C", "2024-01-10", 200),
		orderWith("S1", "I1", "C", "2024-01-25", 300),
	}

	result := a.AnalyzePOVolume(orders)
	if len(result) != 2 {
		t.Fatalf("expected 2 months, got %d", len(result))
	}
	if result[0].Period != "2024-01" || result[0].OrderCount != 2 || result[0].TotalAmount != 500 {
		t.Errorf("first month = %+v", result[0])
	}
}

func TestAnalyzeSupplierConcentration(t *testing.T) {
	a := NewAggregator()
	orders := []model.PurchaseOrder{
		orderWith("Big", "widget", "C", "2024-01-01", 750),
		orderWith("Small", "gadget", "C", "2024-01-01", 250),
		orderWith("Small", "widget", "C", "2024-01-02", 0), // widget 有两个供应商
	}

	result := a.AnalyzeSupplierConcentration(orders)
	if len(result) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(result))
	}

	if result[0].Supplier != "Big" || result[0].Concentration != 75 {
		t.Errorf("top concentration = %+v, want Big at 75%%", result[0])
	}

	// gadget 只有 Small 一个供应商；widget 不是单一来源
	var small model.RiskData
	for _, r := range result {
		if r.Supplier == "Small" {
			small = r
		}
	}
	if len(small.SingleSourceItems) != 1 || small.SingleSourceItems[0] != "gadget" {
		t.Errorf("single-source items = %v, want [gadget]", small.SingleSourceItems)
	}
	if len(result[0].SingleSourceItems) != 0 {
		t.Errorf("Big should have no single-source items, got %v", result[0].SingleSourceItems)
	}
}

func TestCalculateAveragePOValue(t *testing.T) {
	a := NewAggregator()

	t.Run("empty input", func(t *testing.T) {
		got := a.CalculateAveragePOValue(nil)
		if got.Current != 0 || got.Trend != 0 {
			t.Errorf("empty input = %+v, want {0 0}", got)
		}
	})

	t.Run("single order", func(t *testing.T) {
		got := a.CalculateAveragePOValue([]model.PurchaseOrder{
			orderWith("S1", "I1", "C", "2024-01-01", 500),
		})
		if got.Current != 500 || got.Trend != 0 {
			t.Errorf("single order = %+v, want current 500 trend 0", got)
		}
	})

	t.Run("rising trend", func(t *testing.T) {
		orders := []model.PurchaseOrder{
			orderWith("S1", "I1", "C", "2024-04-01", 400),
			orderWith("S1", "I1", "C", "2024-01-01", 100),
			orderWith("S1", "I1", "C", "2024-02-01", 100),
			orderWith("S1", "I1", "C", "2024-03-01", 200),
		}
		got := a.CalculateAveragePOValue(orders)
		// 时间升序：100,100,200,400 → 前半均值 100，后半均值 300
		if got.Current != 300 {
			t.Errorf("current = %f, want 300", got.Current)
		}
		if got.Trend != 200 {
			t.Errorf("trend = %f, want 200 (from 100 to 300)", got.Trend)
		}
	})
}

// 对相同输入重复调用必须得到结构一致的输出
func TestAggregator_Idempotent(t *testing.T) {
	a := NewAggregator()
	orders := []model.PurchaseOrder{
		orderWith("S1", "I1", "Steel", "2024-01-01", 600),
		orderWith("S2", "I2", "", "2024-02-01", 200),
		orderWith("", "I3", "Timber", "bad-date", 150),
	}

	first := a.AnalyzeSpendByCategory(orders)
	second := a.AnalyzeSpendByCategory(orders)
	if len(first) != len(second) {
		t.Fatalf("category counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("category %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}

	if orders[2].Supplier != "" || orders[1].ItemLedgerGroup != "" {
		t.Errorf("input orders were mutated: %+v", orders)
	}
}
