package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// ComparisonService maps the mover-comparison resource.
type ComparisonService struct {
	t *Transport
}

func NewComparisonService(t *Transport) *ComparisonService {
	return &ComparisonService{t: t}
}

// List returns the caller's saved comparisons.
func (s *ComparisonService) List(ctx context.Context) ([]domain.Comparison, error) {
	return DoList[domain.Comparison](ctx, s.t, "/comparisons/", nil)
}

// Get fetches one comparison with its entries.
func (s *ComparisonService) Get(ctx context.Context, id string) (*domain.Comparison, error) {
	return Do[*domain.Comparison](ctx, s.t, http.MethodGet, fmt.Sprintf("/comparisons/%s/", id), nil)
}

// Create starts an empty comparison.
func (s *ComparisonService) Create(ctx context.Context) (*domain.Comparison, error) {
	return Do[*domain.Comparison](ctx, s.t, http.MethodPost, "/comparisons/", nil)
}

// AddEntry adds one mover's offer to a comparison.
func (s *ComparisonService) AddEntry(ctx context.Context, id, moverID string, price float64) (*domain.Comparison, error) {
	return Do[*domain.Comparison](ctx, s.t, http.MethodPost, fmt.Sprintf("/comparisons/%s/entries/", id), map[string]any{
		"mover_id": moverID,
		"price":    price,
	})
}

// Delete removes a comparison.
func (s *ComparisonService) Delete(ctx context.Context, id string) error {
	return DoNoContent(ctx, s.t, http.MethodDelete, fmt.Sprintf("/comparisons/%s/", id), nil)
}
