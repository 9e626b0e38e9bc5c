package analyze

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/business"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/common"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/common/job"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/common/response"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/framework"
)

// AnalyzeHandler 批次分析 Handler
// 处理链：preProcess（依赖解析）→ process（执行分析）→ postProcess（结果格式化）
type AnalyzeHandler struct {
	framework.BaseHandler

	ctx     context.Context
	meta    *job.Meta
	jobData *model.BatchAnalyzeData

	service *business.AnalysisService
	summary *model.BatchAnalysisData
}

// NewAnalyzeHandler 创建批次分析 Handler
// 解析标准化 Job 消息
func NewAnalyzeHandler(ctx context.Context, meta *job.Meta, payload interface{}) (common.HandlerServ, error) {
	// 解析 payload（业务数据）
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	var bizData model.BatchAnalyzeBusinessData
	if err := json.Unmarshal(payloadBytes, &bizData); err != nil {
		return nil, fmt.Errorf("unmarshal business data failed: %w", err)
	}

	// 校验必填字段（batch_id 可由 meta 兜底）
	if bizData.BatchID == "" {
		bizData.BatchID = meta.BatchID
	}
	if bizData.BatchID == "" {
		return nil, fmt.Errorf("batch_id is required")
	}
	if bizData.OrgID == "" {
		bizData.OrgID = meta.OrgID
	}

	// 包装为完整的 BatchAnalyzeData
	jobData := &model.BatchAnalyzeData{
		RequestID:  meta.RequestID,
		OrgID:      meta.OrgID,
		ActionType: meta.ActionType,
		BatchID:    bizData.BatchID,
		Data:       bizData,
	}

	handler := &AnalyzeHandler{
		ctx:     ctx,
		meta:    meta,
		jobData: jobData,
	}
	handler.SetResulter(NewAnalyzeResulter())

	return handler, nil
}

// GetProcess 处理批次分析请求
func (h *AnalyzeHandler) GetProcess() *response.Response {
	result := response.NewAnalysisResult()

	chain := framework.NewPreProcessor([]framework.ProcessorFunc{
		h.preProcess,
		h.process,
		h.postProcess,
	})
	err := chain.Run(h.ctx)
	if err == nil {
		result.Data = h.GetOutput()
	}

	resp := &response.Response{}
	resp.WrapResponse(result, h.meta, err)

	return resp
}

// preProcess 从 Context 解析依赖
func (h *AnalyzeHandler) preProcess(ctx context.Context) error {
	service, ok := h.ctx.Value("analysis_service").(*business.AnalysisService)
	if !ok || service == nil {
		return fmt.Errorf("AnalysisService not found in context")
	}
	h.service = service
	return nil
}

// process 执行批次分析
func (h *AnalyzeHandler) process(ctx context.Context) error {
	input := &business.AnalysisInput{
		RequestID:  h.jobData.RequestID,
		BatchID:    h.jobData.BatchID,
		OrgID:      h.jobData.Data.OrgID,
		OrderCount: h.jobData.Data.OrderCount,
	}

	summary, err := h.service.ExecuteAnalysis(h.ctx, input)
	if err != nil {
		return err
	}

	h.summary = summary
	return nil
}

// postProcess 把分析汇总经 Resulter 转换为输出
func (h *AnalyzeHandler) postProcess(ctx context.Context) error {
	resulter := h.GetResulter()
	if err := resulter.Set(ctx, h.summary); err != nil {
		return err
	}
	h.SetOutput(resulter.Get(ctx))
	return nil
}
