package domains

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bitleak/lmstfy/client"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/common/job"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/common/response"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/errorutil"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/lmstfyx"
)

// nopLogger 测试用空日志实现
type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

func buildJob(t *testing.T, actionType, batchID string) *client.Job {
	t.Helper()
	standardJob := &job.Job{
		Payload: &job.JobPayload{
			Data: &job.JobPayloadData{
				RequestID:  "req-001",
				OrgID:      "1",
				ActionType: actionType,
				BatchID:    batchID,
				Data: map[string]interface{}{
					"batch_id":    batchID,
					"org_id":      "1",
					"order_count": 3,
				},
			},
		},
	}
	data, err := json.Marshal(standardJob)
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	return &client.Job{ID: "job-001", Queue: "po_batch_analyze", Data: data}
}

func TestGetProcessInvalidJSON(t *testing.T) {
	proc := GetProcess(nopLogger{}, nil)

	resp := proc(context.Background(), &client.Job{ID: "bad", Data: []byte("not json")})
	if resp.Action != lmstfyx.JobRespStatusBury {
		t.Errorf("action = %d, want Bury", resp.Action)
	}
}

func TestGetProcessMissingPayload(t *testing.T) {
	proc := GetProcess(nopLogger{}, nil)

	resp := proc(context.Background(), &client.Job{ID: "empty", Data: []byte(`{"payload":null}`)})
	if resp.Action != lmstfyx.JobRespStatusBury {
		t.Errorf("action = %d, want Bury", resp.Action)
	}
}

func TestGetProcessUnknownActionType(t *testing.T) {
	proc := GetProcess(nopLogger{}, nil)

	resp := proc(context.Background(), buildJob(t, "no_such_action", "batch-1"))
	if resp.Action != lmstfyx.JobRespStatusBury {
		t.Errorf("action = %d, want Bury for unknown action_type", resp.Action)
	}
}

func TestGetProcessMissingAnalysisService(t *testing.T) {
	// analysisService 为空，Handler 处理失败且不可重试
	proc := GetProcess(nopLogger{}, nil)

	resp := proc(context.Background(), buildJob(t, model.ActionTypeBatchAnalyze, "batch-1"))
	if resp.Action != lmstfyx.JobRespStatusBury {
		t.Fatalf("action = %d, want Bury", resp.Action)
	}
	if len(resp.Data) == 0 {
		t.Fatal("expected serialized response data")
	}

	var wrapped struct {
		Error     *errorutil.Error `json:"error"`
		Processed bool             `json:"processed"`
	}
	if err := json.Unmarshal(resp.Data, &wrapped); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if wrapped.Error == nil || wrapped.Processed {
		t.Errorf("wrapped = %+v, want error set and processed=false", wrapped)
	}
}

func TestDoJobReport(t *testing.T) {
	ctx := context.Background()
	log := nopLogger{}

	cases := []struct {
		name   string
		err    *errorutil.Error
		action lmstfyx.JobRespStatus
	}{
		{"success", nil, lmstfyx.JobRespStatusSuccess},
		{"retryable", errorutil.Retriable("db timeout"), lmstfyx.JobRespStatusRelease},
		{"non retryable", errorutil.NonRetriable("bad batch"), lmstfyx.JobRespStatusBury},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := &response.Response{Error: tc.err, Processed: tc.err == nil}
			jobResp := doJobReport(ctx, resp, log)
			if jobResp.Action != tc.action {
				t.Errorf("action = %d, want %d", jobResp.Action, tc.action)
			}
			if len(jobResp.Data) == 0 {
				t.Error("expected serialized response data")
			}
		})
	}
}
