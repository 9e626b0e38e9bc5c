package entity

import (
	"time"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// PurchaseOrder 采购订单实体
type PurchaseOrder struct {
	// 基础字段
	ID      string `gorm:"column:id;primaryKey;type:varchar(64)"`
	BatchID string `gorm:"column:batch_id;type:varchar(64);not null;index:idx_batch"`
	OrderNo string `gorm:"column:order_no;type:varchar(128);not null;index:idx_order_no"`

	// 订单数据
	Supplier        string  `gorm:"column:supplier;type:varchar(255)"`
	Item            string  `gorm:"column:item;type:varchar(255)"`
	Branch          string  `gorm:"column:branch;type:varchar(128)"`
	ItemLedgerGroup string  `gorm:"column:item_ledger_group;type:varchar(128)"`
	OrderDate       string  `gorm:"column:order_date;type:varchar(32)"`
	DeliveryDate    string  `gorm:"column:delivery_date;type:varchar(32)"`
	Rate            float64 `gorm:"column:rate"`
	MinQty          float64 `gorm:"column:min_qty"`
	MaxQty          float64 `gorm:"column:max_qty"`
	TotalAmount     float64 `gorm:"column:total_amount"`

	// 审批信息
	LastApprovedRate float64 `gorm:"column:last_approved_rate"`
	IsApproved       bool    `gorm:"column:is_approved;not null;default:false;index:idx_approved"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// ToModel 转换为领域模型
func (e *PurchaseOrder) ToModel() model.PurchaseOrder {
	return model.PurchaseOrder{
		ID:               e.ID,
		OrderNo:          e.OrderNo,
		Supplier:         e.Supplier,
		Item:             e.Item,
		Branch:           e.Branch,
		ItemLedgerGroup:  e.ItemLedgerGroup,
		Date:             e.OrderDate,
		DeliveryDate:     e.DeliveryDate,
		Rate:             e.Rate,
		MinQty:           e.MinQty,
		MaxQty:           e.MaxQty,
		TotalAmount:      e.TotalAmount,
		LastApprovedRate: e.LastApprovedRate,
		IsApproved:       e.IsApproved,
	}
}

// ToModels 批量转换为领域模型
func ToModels(entities []*PurchaseOrder) []model.PurchaseOrder {
	orders := make([]model.PurchaseOrder, 0, len(entities))
	for _, e := range entities {
		orders = append(orders, e.ToModel())
	}
	return orders
}
