package model

// PurchaseOrder 采购订单记录（分析引擎的统一输入，不可变）
// 分析函数不会修改该结构，TotalAmount 以给定值为准（不按 Rate×Qty 重算）
type PurchaseOrder struct {
	ID               string  `json:"id"`
	OrderNo          string  `json:"order_no"`
	Supplier         string  `json:"supplier"`
	Item             string  `json:"item"`
	Branch           string  `json:"branch"`
	ItemLedgerGroup  string  `json:"item_ledger_group"` // 类目
	Date             string  `json:"date"`              // ISO 或 DD/MM/YY
	DeliveryDate     string  `json:"delivery_date"`
	Rate             float64 `json:"rate"`
	MinQty           float64 `json:"min_qty"`
	MaxQty           float64 `json:"max_qty"`
	TotalAmount      float64 `json:"total_amount"`
	LastApprovedRate float64 `json:"last_approved_rate"`
	IsApproved       bool    `json:"is_approved"`
}

// 缺失字段的默认值（归一化时统一填充）
const (
	DefaultSupplier = "Unknown"
	DefaultCategory = "Uncategorized"
)
