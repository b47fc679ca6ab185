package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// AdminService maps the admin catalog resource: stats, item-type CRUD,
// categories, attributes, and mover-submitted catalog suggestions.
type AdminService struct {
	t *Transport
}

func NewAdminService(t *Transport) *AdminService {
	return &AdminService{t: t}
}

// Stats fetches the catalog dashboard header counters.
func (s *AdminService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	return Do[*domain.CatalogStats](ctx, s.t, http.MethodGet, "/admin/catalog/stats/", nil)
}

// ItemTypes lists catalog item types.
func (s *AdminService) ItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	return DoList[domain.ItemType](ctx, s.t, "/admin/catalog/item-types/", nil)
}

// CreateItemType adds an item type to the catalog.
func (s *AdminService) CreateItemType(ctx context.Context, name, categoryID string, basePrice float64) (*domain.ItemType, error) {
	return Do[*domain.ItemType](ctx, s.t, http.MethodPost, "/admin/catalog/item-types/", map[string]any{
		"name":        name,
		"category_id": categoryID,
		"base_price":  basePrice,
	})
}

// UpdateItemType patches an item type.
func (s *AdminService) UpdateItemType(ctx context.Context, id string, partial map[string]any) (*domain.ItemType, error) {
	return Do[*domain.ItemType](ctx, s.t, http.MethodPatch, fmt.Sprintf("/admin/catalog/item-types/%s/", id), partial)
}

// DeleteItemType removes an item type from the catalog.
func (s *AdminService) DeleteItemType(ctx context.Context, id string) error {
	return DoNoContent(ctx, s.t, http.MethodDelete, fmt.Sprintf("/admin/catalog/item-types/%s/", id), nil)
}

// Categories lists catalog categories.
func (s *AdminService) Categories(ctx context.Context) ([]domain.Category, error) {
	return DoList[domain.Category](ctx, s.t, "/admin/catalog/categories/", nil)
}

// CreateCategory adds a category.
func (s *AdminService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	return Do[*domain.Category](ctx, s.t, http.MethodPost, "/admin/catalog/categories/", map[string]string{"name": name})
}

// Attributes lists catalog attribute definitions.
func (s *AdminService) Attributes(ctx context.Context) ([]domain.Attribute, error) {
	return DoList[domain.Attribute](ctx, s.t, "/admin/catalog/attributes/", nil)
}

// Suggestions lists pending catalog suggestions.
func (s *AdminService) Suggestions(ctx context.Context) ([]domain.CatalogSuggestion, error) {
	return DoList[domain.CatalogSuggestion](ctx, s.t, "/admin/catalog/suggestions/", nil)
}

// ApproveSuggestion accepts a suggestion into the catalog.
func (s *AdminService) ApproveSuggestion(ctx context.Context, id string) (*domain.CatalogSuggestion, error) {
	return Do[*domain.CatalogSuggestion](ctx, s.t, http.MethodPost, fmt.Sprintf("/admin/catalog/suggestions/%s/approve/", id), nil)
}

// RejectSuggestion declines a suggestion.
func (s *AdminService) RejectSuggestion(ctx context.Context, id string) (*domain.CatalogSuggestion, error) {
	return Do[*domain.CatalogSuggestion](ctx, s.t, http.MethodPost, fmt.Sprintf("/admin/catalog/suggestions/%s/reject/", id), nil)
}
