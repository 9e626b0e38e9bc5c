package framework

import (
	"context"
	"encoding/json"
	"fmt"
)

// Job 标准 Job 结构（队列消息信封）
type Job struct {
	Payload *JobPayload `json:"payload"`
}

type JobPayload struct {
	Data *JobPayloadData `json:"data"`
}

type JobPayloadData struct {
	RequestID  string      `json:"request_id"`
	ActionType string      `json:"action_type"`
	OrgID      string      `json:"org_id"`
	BatchID    string      `json:"batch_id"`
	Data       interface{} `json:"data"`
}

// JobMeta Job 元信息（从信封提取，贯穿处理链路）
type JobMeta struct {
	RequestID  string
	ActionType string
	OrgID      string
	BatchID    string
}

// Response 标准响应结构
type Response struct {
	Error     interface{} `json:"error"`
	Result    interface{} `json:"result"`
	Processed bool        `json:"processed"`
	Meta      *JobMeta    `json:"meta,omitempty"`
}

// BaseHandler 业务 Handler 的公共底座
// 持有解析后的信封数据和输出，业务 Handler 通过嵌入复用
type BaseHandler struct {
	meta       *JobMeta
	rawData    []byte
	bizPayload interface{}
	output     interface{}
	resulter   Resulter
}

// ParseJob 解析队列消息信封，填充 meta 和业务数据
func (b *BaseHandler) ParseJob(ctx context.Context, rawData []byte) error {
	b.rawData = rawData

	var envelope Job
	if err := json.Unmarshal(rawData, &envelope); err != nil {
		return b.WrapError(err, "unmarshal job failed")
	}
	if envelope.Payload == nil || envelope.Payload.Data == nil {
		return b.WrapError(nil, "invalid job structure")
	}

	data := envelope.Payload.Data
	b.meta = &JobMeta{
		RequestID:  data.RequestID,
		ActionType: data.ActionType,
		OrgID:      data.OrgID,
		BatchID:    data.BatchID,
	}
	b.bizPayload = data.Data

	return nil
}

// WrapResponse 序列化成功响应
func (b *BaseHandler) WrapResponse(ctx context.Context, output interface{}) ([]byte, error) {
	return b.marshalResponse(&Response{
		Result:    output,
		Processed: true,
		Meta:      b.meta,
	})
}

// WrapErrorResponse 序列化失败响应
func (b *BaseHandler) WrapErrorResponse(ctx context.Context, err error) ([]byte, error) {
	return b.marshalResponse(&Response{
		Error:     err.Error(),
		Processed: false,
		Meta:      b.meta,
	})
}

func (b *BaseHandler) marshalResponse(resp *Response) ([]byte, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, b.WrapError(err, "marshal response failed")
	}
	return data, nil
}

// WrapError 统一包装错误
func (b *BaseHandler) WrapError(err error, msg string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s", msg)
}

// GetMeta 获取 meta
func (b *BaseHandler) GetMeta() *JobMeta {
	return b.meta
}

// GetRawData 获取原始消息数据
func (b *BaseHandler) GetRawData() []byte {
	return b.rawData
}

// GetBizPayload 获取业务数据
func (b *BaseHandler) GetBizPayload() interface{} {
	return b.bizPayload
}

// SetOutput 设置输出
func (b *BaseHandler) SetOutput(output interface{}) {
	b.output = output
}

// GetOutput 获取输出
func (b *BaseHandler) GetOutput() interface{} {
	return b.output
}

// SetResulter 设置结果处理器
func (b *BaseHandler) SetResulter(resulter Resulter) {
	b.resulter = resulter
}

// GetResulter 获取结果处理器
func (b *BaseHandler) GetResulter() Resulter {
	return b.resulter
}
