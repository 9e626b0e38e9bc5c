package analyze

import (
	"context"
	"testing"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/common/job"
)

func TestNewAnalyzeHandlerBatchIDFallback(t *testing.T) {
	meta := &job.Meta{
		RequestID:  "req-1",
		OrgID:      "1",
		ActionType: model.ActionTypeBatchAnalyze,
		BatchID:    "batch-from-meta",
	}

	// payload 不带 batch_id，应从 meta 兜底
	h, err := NewAnalyzeHandler(context.Background(), meta, map[string]interface{}{
		"order_count": 5,
	})
	if err != nil {
		t.Fatalf("NewAnalyzeHandler: %v", err)
	}

	handler := h.(*AnalyzeHandler)
	if handler.jobData.BatchID != "batch-from-meta" {
		t.Errorf("BatchID = %q, want fallback from meta", handler.jobData.BatchID)
	}
	if handler.jobData.Data.OrgID != "1" {
		t.Errorf("OrgID = %q, want fallback from meta", handler.jobData.Data.OrgID)
	}
}

func TestNewAnalyzeHandlerMissingBatchID(t *testing.T) {
	meta := &job.Meta{RequestID: "req-1", ActionType: model.ActionTypeBatchAnalyze}

	if _, err := NewAnalyzeHandler(context.Background(), meta, map[string]interface{}{}); err == nil {
		t.Error("expected error when batch_id missing in payload and meta")
	}
}

func TestAnalyzeHandlerMissingService(t *testing.T) {
	meta := &job.Meta{
		RequestID:  "req-1",
		ActionType: model.ActionTypeBatchAnalyze,
		BatchID:    "batch-1",
	}

	h, err := NewAnalyzeHandler(context.Background(), meta, map[string]interface{}{
		"batch_id": "batch-1",
	})
	if err != nil {
		t.Fatalf("NewAnalyzeHandler: %v", err)
	}

	resp := h.GetProcess()
	if resp.Processed {
		t.Error("Processed = true, want false without analysis service")
	}
	if resp.Error == nil {
		t.Fatal("expected error in response")
	}
	if resp.Error.Retryable {
		t.Error("missing dependency should not be retryable")
	}
}

func TestAnalyzeResulter(t *testing.T) {
	r := NewAnalyzeResulter()
	ctx := context.Background()

	if err := r.Set(ctx, nil); err == nil {
		t.Error("expected error for nil summary")
	}

	summary := &model.BatchAnalysisData{
		BatchID:     "batch-1",
		OrderCount:  4,
		ResultCount: 2,
	}
	if err := r.Set(ctx, summary); err != nil {
		t.Fatalf("Set: %v", err)
	}

	output, ok := r.Get(ctx).(*AnalyzeOutput)
	if !ok {
		t.Fatalf("output type = %T", r.Get(ctx))
	}
	if output.BatchID != "batch-1" || output.ResultCount != 2 {
		t.Errorf("output = %+v", output)
	}
	if output.ProcessedAt == 0 {
		t.Error("ProcessedAt not stamped")
	}
}
