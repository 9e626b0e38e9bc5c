package request

import "github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"

// ToOrderEntities 将 Request DTO 转换为订单实体列表
func (r *CreateBatchRequest) ToOrderEntities() []*entity.PurchaseOrder {
	orders := make([]*entity.PurchaseOrder, 0, len(r.Orders))
	for _, dto := range r.Orders {
		orders = append(orders, &entity.PurchaseOrder{
			OrderNo:          dto.OrderNo,
			Supplier:         dto.Supplier,
			Item:             dto.Item,
			Branch:           dto.Branch,
			ItemLedgerGroup:  dto.ItemLedgerGroup,
			OrderDate:        dto.Date,
			DeliveryDate:     dto.DeliveryDate,
			Rate:             dto.Rate,
			MinQty:           dto.MinQty,
			MaxQty:           dto.MaxQty,
			TotalAmount:      dto.TotalAmount,
			LastApprovedRate: dto.LastApprovedRate,
			IsApproved:       dto.IsApproved,
		})
	}
	return orders
}
