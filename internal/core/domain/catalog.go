package domain

import "time"

// CatalogStats summarises the admin catalog dashboard header.
type CatalogStats struct {
	TotalItemTypes     int `json:"total_item_types"`
	TotalCategories    int `json:"total_categories"`
	PendingSuggestions int `json:"pending_suggestions"`
	ActiveMovers       int `json:"active_movers"`
}

// Attribute is a catalog attribute definition (e.g. "fragile", "stackable").
type Attribute struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values,omitempty"`
}

const (
	SuggestionPending  = "pending"
	SuggestionApproved = "approved"
	SuggestionRejected = "rejected"
)

// CatalogSuggestion is a mover-submitted proposal for a new item type,
// moderated by admins.
type CatalogSuggestion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryID  string    `json:"category_id"`
	SuggestedBy string    `json:"suggested_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}
