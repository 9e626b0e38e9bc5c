package trend

import (
	"testing"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

func datedPO(id, supplier, item, category, date string, rate, amount float64) model.PurchaseOrder {
	return model.PurchaseOrder{
		ID:              id,
		Supplier:        supplier,
		Item:            item,
		ItemLedgerGroup: category,
		Date:            date,
		Rate:            rate,
		TotalAmount:     amount,
	}
}

func TestAnalyzePeriodTrends_Monthly(t *testing.T) {
	a := NewAnalyzer()
	orders := []model.PurchaseOrder{
		datedPO("1", "S1", "I1", "Cat A", "2024-01-10", 10, 100),
		datedPO("2", "S2", "I2", "Cat A", "2024-01-20", 10, 300),
		datedPO("3", "S1", "I1", "Cat B", "2024-02-05", 10, 500),
		datedPO("4", "S1", "I1", "Cat B", "not-a-date", 10, 999), // 静默排除
	}

	metrics := a.AnalyzePeriodTrends(orders, model.PeriodMonthly)
	if len(metrics) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(metrics))
	}

	jan := metrics[0]
	if jan.Period != "2024-01" {
		t.Errorf("first period = %s, want 2024-01 (ascending order)", jan.Period)
	}
	if jan.OrderCount != 2 || jan.TotalAmount != 400 || jan.AverageValue != 200 {
		t.Errorf("jan metrics = %+v", jan)
	}
	if jan.SupplierCount != 2 {
		t.Errorf("jan supplier count = %d, want 2", jan.SupplierCount)
	}
	if jan.TopCategory != "Cat A" {
		t.Errorf("jan top category = %s, want Cat A", jan.TopCategory)
	}

	feb := metrics[1]
	if feb.Period != "2024-02" || feb.OrderCount != 1 {
		t.Errorf("feb metrics = %+v", feb)
	}
}

func TestAnalyzePeriodTrends_WeeklyKeys(t *testing.T) {
	a := NewAnalyzer()
	// 2024-01-10 是周三，周起始日应为 2024-01-08（周一）
	orders := []model.PurchaseOrder{
		datedPO("1", "S1", "I1", "Cat A", "2024-01-10", 10, 100),
		datedPO("2", "S1", "I1", "Cat A", "2024-01-08", 10, 100),
		datedPO("3", "S1", "I1", "Cat A", "2024-01-14", 10, 100), // 周日，仍属同一周
		datedPO("4", "S1", "I1", "Cat A", "2024-01-15", 10, 100), // 下周一
	}

	metrics := a.AnalyzePeriodTrends(orders, model.PeriodWeekly)
	if len(metrics) != 2 {
		t.Fatalf("expected 2 weekly buckets, got %d", len(metrics))
	}
	if metrics[0].Period != "2024-01-08" || metrics[0].OrderCount != 3 {
		t.Errorf("first week = %+v, want period 2024-01-08 with 3 orders", metrics[0])
	}
	if metrics[1].Period != "2024-01-15" || metrics[1].OrderCount != 1 {
		t.Errorf("second week = %+v, want period 2024-01-15 with 1 order", metrics[1])
	}
}

func TestAnalyzePeriodTrends_DDMMYYDates(t *testing.T) {
	a := NewAnalyzer()
	orders := []model.PurchaseOrder{
		datedPO("1", "S1", "I1", "Cat A", "15/03/24", 10, 100),
	}

	metrics := a.AnalyzePeriodTrends(orders, model.PeriodMonthly)
	if len(metrics) != 1 || metrics[0].Period != "2024-03" {
		t.Fatalf("DD/MM/YY date not bucketed correctly: %+v", metrics)
	}
}

func TestAnalyzeSupplierTrends(t *testing.T) {
	a := NewAnalyzer()
	orders := []model.PurchaseOrder{
		datedPO("1", "Steady", "I1", "", "2024-01-01", 100, 100),
		datedPO("2", "Steady", "I1", "", "2024-01-08", 100, 100),
		datedPO("3", "Steady", "I1", "", "2024-01-15", 100, 100),
		datedPO("4", "ZeroRate", "I2", "", "2024-01-01", 0, 100),
		datedPO("5", "Lonely", "I3", "", "2024-01-01", 50, 100),
	}

	trends := a.AnalyzeSupplierTrends(orders)
	if len(trends) != 3 {
		t.Fatalf("expected 3 suppliers, got %d", len(trends))
	}

	byName := map[string]model.SupplierTrend{}
	for _, tr := range trends {
		byName[tr.Supplier] = tr
	}

	steady := byName["Steady"]
	if steady.AverageRate != 100 {
		t.Errorf("steady avg rate = %f, want 100", steady.AverageRate)
	}
	if !steady.RateVolatility.Valid || steady.RateVolatility.Value != 0 {
		t.Errorf("steady volatility = %+v, want valid 0", steady.RateVolatility)
	}
	if steady.OrderFrequency != model.FrequencyWeekly {
		t.Errorf("steady frequency = %s, want weekly (7 day gaps)", steady.OrderFrequency)
	}

	// 均值为 0 时波动率不适用
	if byName["ZeroRate"].RateVolatility.Valid {
		t.Errorf("zero-mean volatility must be NotApplicable, got %+v", byName["ZeroRate"].RateVolatility)
	}

	// 单笔订单没有间隔样本
	if byName["Lonely"].OrderFrequency != model.FrequencyIrregular {
		t.Errorf("single-order supplier frequency = %s, want irregular", byName["Lonely"].OrderFrequency)
	}
}

func TestClassifyOrderFrequency(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  string
	}{
		{"weekly", []string{"2024-01-01", "2024-01-08", "2024-01-15"}, model.FrequencyWeekly},
		{"monthly", []string{"2024-01-01", "2024-02-01", "2024-03-01"}, model.FrequencyMonthly},
		{"quarterly", []string{"2024-01-01", "2024-04-01", "2024-07-01"}, model.FrequencyQuarterly},
		{"irregular", []string{"2023-01-01", "2024-01-01"}, model.FrequencyIrregular},
		{"unparsable dates", []string{"bad", "worse"}, model.FrequencyIrregular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := make([]model.PurchaseOrder, 0, len(tt.dates))
			for _, d := range tt.dates {
				group = append(group, model.PurchaseOrder{Date: d})
			}
			if got := classifyOrderFrequency(group); got != tt.want {
				t.Errorf("classifyOrderFrequency() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIdentifyDetailedAnomalies_PriceDeviation(t *testing.T) {
	a := NewAnalyzer()
	// 组均值 = (100+100+200)/3 ≈ 133.33，200 偏差 50% → medium；100 偏差 -25% 不标记
	orders := []model.PurchaseOrder{
		datedPO("1", "S1", "I1", "Cat", "2024-01-01", 100, 100),
		datedPO("2", "S1", "I1", "Cat", "2024-01-02", 100, 100),
		datedPO("3", "S1", "I1", "Cat", "2024-01-03", 200, 100),
	}

	anomalies := a.IdentifyDetailedAnomalies(orders)

	deviations := make([]model.TrendAnomaly, 0)
	for _, an := range anomalies {
		if an.Type == model.TrendAnomalyPriceDeviation {
			deviations = append(deviations, an)
		}
	}
	if len(deviations) != 1 {
		t.Fatalf("expected 1 price deviation, got %d: %+v", len(deviations), deviations)
	}
	d := deviations[0]
	if d.Severity != model.SeverityMedium {
		t.Errorf("severity = %s, want medium (50%% is not above the high threshold)", d.Severity)
	}
	if d.Metrics.CurrentValue != 200 {
		t.Errorf("current value = %f, want 200", d.Metrics.CurrentValue)
	}
}

func TestIdentifyDetailedAnomalies_MinimumSamples(t *testing.T) {
	a := NewAnalyzer()
	// 单样本组没有基线，不产生价格偏差异常
	orders := []model.PurchaseOrder{
		datedPO("1", "S1", "I1", "Cat", "2024-01-01", 500, 100),
	}
	for _, an := range a.IdentifyDetailedAnomalies(orders) {
		if an.Type == model.TrendAnomalyPriceDeviation {
			t.Errorf("single-sample pair must not produce deviations: %+v", an)
		}
	}
}

func TestIdentifyDetailedAnomalies_LargeOrder(t *testing.T) {
	a := NewAnalyzer()
	// 4 个样本（>3），均值 = (100+100+100+700)/4 = 250，700 = 2.8x 不标记
	base := []model.PurchaseOrder{
		datedPO("1", "S1", "I1", "Cat", "2024-01-01", 10, 100),
		datedPO("2", "S1", "I1", "Cat", "2024-01-02", 10, 100),
		datedPO("3", "S1", "I1", "Cat", "2024-01-03", 10, 100),
		datedPO("4", "S1", "I1", "Cat", "2024-01-04", 10, 700),
	}
	for _, an := range a.IdentifyDetailedAnomalies(base) {
		if an.Type == model.TrendAnomalyLargeOrder {
			t.Errorf("2.8x the average must not be flagged: %+v", an)
		}
	}

	// 均值 = (100+100+100+100+2000)/5 = 480，2000 ≈ 4.2x → medium
	flagged := append(base[:3:3],
		datedPO("4", "S1", "I1", "Cat", "2024-01-04", 10, 100),
		datedPO("5", "S1", "I1", "Cat", "2024-01-05", 10, 2000),
	)
	found := false
	for _, an := range a.IdentifyDetailedAnomalies(flagged) {
		if an.Type == model.TrendAnomalyLargeOrder {
			found = true
			if an.Severity != model.SeverityMedium {
				t.Errorf("severity = %s, want medium (ratio below 5x)", an.Severity)
			}
		}
	}
	if !found {
		t.Errorf("expected a large-order anomaly at 4.2x the average")
	}
}

func TestIdentifyDetailedAnomalies_DuplicateGroups(t *testing.T) {
	a := NewAnalyzer()
	orders := []model.PurchaseOrder{
		datedPO("1", "S1", "I1", "Cat", "2024-01-01", 10, 100),
		datedPO("2", "S1", "I1", "Cat", "2024-01-01", 10, 100),
		datedPO("3", "S1", "I1", "Cat", "2024-01-02", 10, 100), // 日期不同，不在组内
	}

	duplicates := make([]model.TrendAnomaly, 0)
	for _, an := range a.IdentifyDetailedAnomalies(orders) {
		if an.Type == model.TrendAnomalyDuplicateOrder {
			duplicates = append(duplicates, an)
		}
	}
	if len(duplicates) != 1 {
		t.Fatalf("expected 1 duplicate group anomaly, got %d", len(duplicates))
	}
	if duplicates[0].Severity != model.SeverityMedium {
		t.Errorf("severity = %s, want medium", duplicates[0].Severity)
	}
	if len(duplicates[0].RelatedPOs) != 2 {
		t.Errorf("related POs = %d, want 2 (the whole group)", len(duplicates[0].RelatedPOs))
	}
}

func TestIdentifyDetailedAnomalies_HighVolumeDay(t *testing.T) {
	a := NewAnalyzer()

	// 11 单合计 1,100,000 → medium
	orders := make([]model.PurchaseOrder, 0, 11)
	for i := 0; i < 11; i++ {
		orders = append(orders, datedPO("x", "S1", "Item", "Cat", "2024-01-01", 10, 100000))
	}

	found := false
	for _, an := range a.IdentifyDetailedAnomalies(orders) {
		if an.Type == model.TrendAnomalyHighVolumeDay {
			found = true
			if an.Severity != model.SeverityMedium {
				t.Errorf("severity = %s, want medium", an.Severity)
			}
			if len(an.RelatedPOs) != 11 {
				t.Errorf("related POs = %d, want 11", len(an.RelatedPOs))
			}
		}
	}
	if !found {
		t.Fatalf("expected a high-volume day anomaly")
	}

	// 11 单但合计正好 1,000,000：金额阈值是开区间，不触发
	cheap := make([]model.PurchaseOrder, 0, 11)
	for i := 0; i < 10; i++ {
		cheap = append(cheap, datedPO("x", "S1", "Item", "Cat", "2024-01-01", 10, 100000))
	}
	cheap = append(cheap, datedPO("x", "S1", "Item", "Cat", "2024-01-01", 10, 0))
	for _, an := range a.IdentifyDetailedAnomalies(cheap) {
		if an.Type == model.TrendAnomalyHighVolumeDay {
			t.Errorf("exactly 1,000,000 must not trigger: %+v", an)
		}
	}
}

func TestIdentifyDetailedAnomalies_SeveritySorted(t *testing.T) {
	a := NewAnalyzer()
	// 同时制造 high（价格偏差 ±60%）与 medium（重复下单）异常
	orders := []model.PurchaseOrder{
		datedPO("1", "S1", "I1", "Cat", "2024-01-01", 100, 100),
		datedPO("2", "S1", "I1", "Cat", "2024-01-02", 400, 100),
		datedPO("3", "S2", "I2", "Cat", "2024-01-01", 10, 100),
		datedPO("4", "S2", "I2", "Cat", "2024-01-01", 10, 100),
	}

	anomalies := a.IdentifyDetailedAnomalies(orders)
	if len(anomalies) < 2 {
		t.Fatalf("expected at least 2 anomalies, got %d", len(anomalies))
	}
	for i := 1; i < len(anomalies); i++ {
		if model.SeverityRank(anomalies[i-1].Severity) > model.SeverityRank(anomalies[i].Severity) {
			t.Errorf("anomalies not sorted by severity: %s before %s",
				anomalies[i-1].Severity, anomalies[i].Severity)
		}
	}
	if anomalies[0].Severity != model.SeverityHigh {
		t.Errorf("first anomaly severity = %s, want high", anomalies[0].Severity)
	}
}
