package framework

import (
	"context"
	"encoding/json"
	"testing"
)

// 标准 Job 解析
func TestBaseHandlerParseJob(t *testing.T) {
	raw := []byte(`{
		"payload": {
			"data": {
				"request_id": "req-1",
				"action_type": "po_batch_analyze",
				"org_id": "0",
				"batch_id": "batch-1",
				"data": {"batch_id": "batch-1", "order_count": 3}
			}
		}
	}`)

	b := &BaseHandler{}
	if err := b.ParseJob(context.Background(), raw); err != nil {
		t.Fatalf("ParseJob: %v", err)
	}

	meta := b.GetMeta()
	if meta.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want req-1", meta.RequestID)
	}
	if meta.ActionType != "po_batch_analyze" {
		t.Errorf("ActionType = %q", meta.ActionType)
	}
	if meta.BatchID != "batch-1" {
		t.Errorf("BatchID = %q", meta.BatchID)
	}

	payload, ok := b.GetBizPayload().(map[string]interface{})
	if !ok {
		t.Fatalf("BizPayload type = %T", b.GetBizPayload())
	}
	if payload["batch_id"] != "batch-1" {
		t.Errorf("biz batch_id = %v", payload["batch_id"])
	}

	if string(b.GetRawData()) != string(raw) {
		t.Error("raw data not retained")
	}
}

func TestBaseHandlerParseJobInvalid(t *testing.T) {
	b := &BaseHandler{}

	if err := b.ParseJob(context.Background(), []byte(`not json`)); err == nil {
		t.Error("expected error for malformed json")
	}

	if err := b.ParseJob(context.Background(), []byte(`{"payload": null}`)); err == nil {
		t.Error("expected error for nil payload")
	}

	if err := b.ParseJob(context.Background(), []byte(`{"payload": {"data": null}}`)); err == nil {
		t.Error("expected error for nil payload.data")
	}
}

func TestBaseHandlerWrapResponse(t *testing.T) {
	b := &BaseHandler{}
	raw := []byte(`{"payload":{"data":{"request_id":"req-2","action_type":"po_batch_analyze","batch_id":"b-2","data":{}}}}`)
	if err := b.ParseJob(context.Background(), raw); err != nil {
		t.Fatalf("ParseJob: %v", err)
	}

	data, err := b.WrapResponse(context.Background(), map[string]interface{}{"result_count": 2})
	if err != nil {
		t.Fatalf("WrapResponse: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Processed {
		t.Error("Processed = false, want true")
	}
	if resp.Error != nil {
		t.Errorf("Error = %v, want nil", resp.Error)
	}
	if resp.Meta == nil || resp.Meta.BatchID != "b-2" {
		t.Errorf("Meta = %+v", resp.Meta)
	}
}

func TestBaseHandlerWrapErrorResponse(t *testing.T) {
	b := &BaseHandler{}

	data, err := b.WrapErrorResponse(context.Background(), b.WrapError(nil, "batch not found"))
	if err != nil {
		t.Fatalf("WrapErrorResponse: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Processed {
		t.Error("Processed = true, want false")
	}
	if resp.Error != "batch not found" {
		t.Errorf("Error = %v", resp.Error)
	}
}
