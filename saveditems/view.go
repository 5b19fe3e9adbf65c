package saveditems

import (
	"time"

	"kirana/models"
)

// EntryView is a list entry with its product document attached for the
// read surface. Product is nil when the catalog no longer has the id.
type EntryView struct {
	models.ListEntry
	Product *models.Product `json:"product,omitempty"`
}

// ListView is the populated read shape of a SavedList.
type ListView struct {
	UserID    string      `json:"userId"`
	Kind      string      `json:"kind"`
	Items     []EntryView `json:"items"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ProductIDs returns the entry product ids in list order.
func ProductIDs(list *models.SavedList) []string {
	ids := make([]string, 0, len(list.Items))
	for _, entry := range list.Items {
		ids = append(ids, entry.ProductID)
	}
	return ids
}

// BuildView pairs each entry with its resolved product.
func BuildView(list *models.SavedList, resolved map[string]models.Product) ListView {
	view := ListView{
		UserID:    list.UserID,
		Kind:      list.Kind,
		Items:     make([]EntryView, 0, len(list.Items)),
		UpdatedAt: list.UpdatedAt,
	}
	for _, entry := range list.Items {
		ev := EntryView{ListEntry: entry}
		if p, ok := resolved[entry.ProductID]; ok {
			p := p
			ev.Product = &p
		}
		view.Items = append(view.Items, ev)
	}
	return view
}
