package models

// Index is a catalog-change event published over redis pub/sub.
// Method is one of "create", "update", "delete".
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityID   string `json:"entity_id"`
	Title      string `json:"title,omitempty"`
}
