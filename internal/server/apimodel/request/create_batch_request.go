package request

// CreateBatchRequest 提交分析批次请求
type CreateBatchRequest struct {
	OrgID  string          `json:"org_id" example:"0"`
	Orders []*OrderPayload `json:"orders" binding:"required,min=1,dive"`
}

// OrderPayload 采购订单载荷
type OrderPayload struct {
	OrderNo          string  `json:"order_no" binding:"required" example:"PO-20260801-001"`
	Supplier         string  `json:"supplier" example:"ACME Industrial"`
	Item             string  `json:"item" example:"Steel Rod 12mm"`
	Branch           string  `json:"branch" example:"Dhaka"`
	ItemLedgerGroup  string  `json:"item_ledger_group" example:"Raw Materials"`
	Date             string  `json:"date" example:"2026-08-01"`
	DeliveryDate     string  `json:"delivery_date" example:"2026-08-15"`
	Rate             float64 `json:"rate" example:"125.5"`
	MinQty           float64 `json:"min_qty" example:"10"`
	MaxQty           float64 `json:"max_qty" example:"100"`
	TotalAmount      float64 `json:"total_amount" example:"12550"`
	LastApprovedRate float64 `json:"last_approved_rate" example:"120"`
	IsApproved       bool    `json:"is_approved" example:"false"`
}
