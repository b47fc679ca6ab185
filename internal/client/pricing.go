package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// PricingService maps the mover pricing resource: the global pricing-factor
// settings (one record per mover), the item-type catalog with the effective
// pricing overlay, and per-item price overrides.
type PricingService struct {
	t *Transport
}

func NewPricingService(t *Transport) *PricingService {
	return &PricingService{t: t}
}

// PricingFactors fetches the mover's pricing settings.
func (s *PricingService) PricingFactors(ctx context.Context) (*domain.PricingFactors, error) {
	return Do[*domain.PricingFactors](ctx, s.t, http.MethodGet, "/movers/pricing-factors/", nil)
}

// UpdatePricingFactors patches pricing settings and returns the new record.
func (s *PricingService) UpdatePricingFactors(ctx context.Context, partial map[string]any) (*domain.PricingFactors, error) {
	return Do[*domain.PricingFactors](ctx, s.t, http.MethodPatch, "/movers/pricing-factors/", partial)
}

// ItemTypes lists the catalog with the mover's effective prices overlaid.
func (s *PricingService) ItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	return DoList[domain.ItemType](ctx, s.t, "/movers/item-types/", nil)
}

// PriceOverrides lists the mover's price overrides.
func (s *PricingService) PriceOverrides(ctx context.Context) ([]domain.PriceOverride, error) {
	return DoList[domain.PriceOverride](ctx, s.t, "/movers/pricing/", nil)
}

// CreatePriceOverride sets a mover-specific price for one item type.
func (s *PricingService) CreatePriceOverride(ctx context.Context, itemTypeID string, price float64) (*domain.PriceOverride, error) {
	return Do[*domain.PriceOverride](ctx, s.t, http.MethodPost, "/movers/pricing/", map[string]any{
		"item_type_id": itemTypeID,
		"price":        price,
	})
}

// UpdatePriceOverride patches an existing override.
func (s *PricingService) UpdatePriceOverride(ctx context.Context, id string, partial map[string]any) (*domain.PriceOverride, error) {
	return Do[*domain.PriceOverride](ctx, s.t, http.MethodPatch, fmt.Sprintf("/movers/pricing/%s/", id), partial)
}

// DeletePriceOverride removes an override, reverting to the base price.
func (s *PricingService) DeletePriceOverride(ctx context.Context, id string) error {
	return DoNoContent(ctx, s.t, http.MethodDelete, fmt.Sprintf("/movers/pricing/%s/", id), nil)
}

// Categories lists the pricing categories.
func (s *PricingService) Categories(ctx context.Context) ([]domain.Category, error) {
	return DoList[domain.Category](ctx, s.t, "/movers/categories/", nil)
}
