package analysis

import (
	"testing"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

func TestNormalizeOrder(t *testing.T) {
	po := model.PurchaseOrder{ID: "1", Supplier: "  ", ItemLedgerGroup: ""}

	got := NormalizeOrder(po)
	if got.Supplier != model.DefaultSupplier {
		t.Errorf("supplier = %q, want %q", got.Supplier, model.DefaultSupplier)
	}
	if got.ItemLedgerGroup != model.DefaultCategory {
		t.Errorf("category = %q, want %q", got.ItemLedgerGroup, model.DefaultCategory)
	}

	// 已有值不被覆盖
	filled := NormalizeOrder(model.PurchaseOrder{Supplier: "Acme", ItemLedgerGroup: "Steel"})
	if filled.Supplier != "Acme" || filled.ItemLedgerGroup != "Steel" {
		t.Errorf("filled order changed: %+v", filled)
	}
}

func TestNormalizeOrders_DoesNotMutateInput(t *testing.T) {
	orders := []model.PurchaseOrder{{ID: "1", Supplier: ""}}

	normalized := NormalizeOrders(orders)
	if normalized[0].Supplier != model.DefaultSupplier {
		t.Errorf("normalized supplier = %q", normalized[0].Supplier)
	}
	if orders[0].Supplier != "" {
		t.Errorf("input slice was mutated: %+v", orders[0])
	}
}
