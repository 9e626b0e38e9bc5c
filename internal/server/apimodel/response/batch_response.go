package response

import "time"

// BatchResponse 批次响应（DTO）
type BatchResponse struct {
	ID         string      `json:"id"`
	BatchNo    int64       `json:"batch_no"`
	OrgID      string      `json:"org_id"`
	Status     string      `json:"status"`
	OrderCount int         `json:"order_count"`
	Analysis   interface{} `json:"analysis,omitempty"`
	Error      string      `json:"error,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
