package svreport

import (
	"context"
	"fmt"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis/report"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis/trend"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/repo/rporder"
)

// ReportService 趋势与报表服务
// 从仓储加载订单，委托给分析引擎
type ReportService struct {
	batchRepo  rporder.BatchRepository
	analyzer   *trend.Analyzer
	aggregator *report.Aggregator
}

// NewReportService 创建报表服务实例
func NewReportService(batchRepo rporder.BatchRepository) *ReportService {
	return &ReportService{
		batchRepo:  batchRepo,
		analyzer:   trend.NewAnalyzer(),
		aggregator: report.NewAggregator(),
	}
}

// loadAllOrders 加载全部订单为领域模型
func (s *ReportService) loadAllOrders(ctx context.Context) ([]model.PurchaseOrder, error) {
	entities, err := s.batchRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders failed: %w", err)
	}
	return entity.ToModels(entities), nil
}

// loadApprovedOrders 加载已审批订单为领域模型
func (s *ReportService) loadApprovedOrders(ctx context.Context) ([]model.PurchaseOrder, error) {
	entities, err := s.batchRepo.GetApprovedOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load approved orders failed: %w", err)
	}
	return entity.ToModels(entities), nil
}

// PeriodTrends 周期趋势
func (s *ReportService) PeriodTrends(ctx context.Context, periodType string) ([]model.TrendMetrics, error) {
	orders, err := s.loadAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.analyzer.AnalyzePeriodTrends(orders, periodType), nil
}

// SupplierTrends 供应商趋势
func (s *ReportService) SupplierTrends(ctx context.Context) ([]model.SupplierTrend, error) {
	orders, err := s.loadAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.analyzer.AnalyzeSupplierTrends(orders), nil
}

// TrendAnomalies 详细趋势异常
func (s *ReportService) TrendAnomalies(ctx context.Context) ([]model.TrendAnomaly, error) {
	orders, err := s.loadAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.analyzer.IdentifyDetailedAnomalies(orders), nil
}

// SpendByCategory 分类支出
func (s *ReportService) SpendByCategory(ctx context.Context) ([]model.SpendByCategory, error) {
	orders, err := s.loadApprovedOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.AnalyzeSpendByCategory(orders), nil
}

// SpendBySupplier 供应商支出（Top N）
func (s *ReportService) SpendBySupplier(ctx context.Context, limit int) ([]model.SpendBySupplier, error) {
	orders, err := s.loadApprovedOrders(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = report.DefaultSupplierLimit
	}
	return s.aggregator.AnalyzeSpendBySupplier(orders, limit), nil
}

// SpendTrend 支出趋势
func (s *ReportService) SpendTrend(ctx context.Context, interval string) ([]model.SpendTrendPoint, error) {
	orders, err := s.loadApprovedOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.AnalyzeSpendTrend(orders, interval), nil
}

// SupplierPerformance 供应商绩效
func (s *ReportService) SupplierPerformance(ctx context.Context) ([]model.SupplierPerformance, error) {
	orders, err := s.loadApprovedOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.AnalyzeSupplierPerformance(orders), nil
}

// POVolume 月度订单量
func (s *ReportService) POVolume(ctx context.Context) ([]model.POVolumePoint, error) {
	orders, err := s.loadApprovedOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.AnalyzePOVolume(orders), nil
}

// SupplierConcentration 供应商集中度
func (s *ReportService) SupplierConcentration(ctx context.Context) ([]model.RiskData, error) {
	orders, err := s.loadApprovedOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.AnalyzeSupplierConcentration(orders), nil
}

// AveragePOValue 平均订单金额与走势
func (s *ReportService) AveragePOValue(ctx context.Context) (model.AveragePOValue, error) {
	orders, err := s.loadApprovedOrders(ctx)
	if err != nil {
		return model.AveragePOValue{}, err
	}
	return s.aggregator.CalculateAveragePOValue(orders), nil
}
