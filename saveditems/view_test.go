package saveditems

import (
	"testing"
	"time"

	"kirana/models"
)

func TestBuildViewPairsEntriesWithProducts(t *testing.T) {
	now := time.Now()
	list := &models.SavedList{
		Kind:   models.ListKindCart,
		UserID: "u1",
		Items: []models.ListEntry{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "gone", Quantity: 1},
		},
		UpdatedAt: now,
	}
	resolved := map[string]models.Product{
		"p1": {Title: "Soap Bar"},
	}

	view := BuildView(list, resolved)
	if view.UserID != "u1" || view.Kind != models.ListKindCart {
		t.Fatalf("view header: %+v", view)
	}
	if len(view.Items) != 2 {
		t.Fatalf("items = %d, want 2 (deleted products keep their entry)", len(view.Items))
	}
	if view.Items[0].Product == nil || view.Items[0].Product.Title != "Soap Bar" {
		t.Fatalf("first entry product: %+v", view.Items[0].Product)
	}
	if view.Items[1].Product != nil {
		t.Fatalf("unresolvable product should be nil, got %+v", view.Items[1].Product)
	}
}

func TestProductIDsPreserveOrder(t *testing.T) {
	list := &models.SavedList{Items: []models.ListEntry{
		{ProductID: "b"}, {ProductID: "a"}, {ProductID: "c"},
	}}
	ids := ProductIDs(list)
	if len(ids) != 3 || ids[0] != "b" || ids[1] != "a" || ids[2] != "c" {
		t.Fatalf("ids = %v", ids)
	}
}
