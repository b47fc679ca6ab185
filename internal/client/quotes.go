package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// QuoteService maps the quote resource.
type QuoteService struct {
	t *Transport
}

func NewQuoteService(t *Transport) *QuoteService {
	return &QuoteService{t: t}
}

// List returns the caller's quotes.
func (s *QuoteService) List(ctx context.Context) ([]domain.Quote, error) {
	return DoList[domain.Quote](ctx, s.t, "/quotes/", nil)
}

// Get fetches one quote.
func (s *QuoteService) Get(ctx context.Context, id string) (*domain.Quote, error) {
	return Do[*domain.Quote](ctx, s.t, http.MethodGet, fmt.Sprintf("/quotes/%s/", id), nil)
}

// CreateQuoteRequest carries a new quote request.
type CreateQuoteRequest struct {
	FromAddress string             `json:"from_address"`
	ToAddress   string             `json:"to_address"`
	MoveDate    string             `json:"move_date,omitempty"`
	Items       []domain.QuoteItem `json:"items,omitempty"`
}

// Create submits a new quote request.
func (s *QuoteService) Create(ctx context.Context, req CreateQuoteRequest) (*domain.Quote, error) {
	return Do[*domain.Quote](ctx, s.t, http.MethodPost, "/quotes/", req)
}

// Accept accepts a mover's priced quote.
func (s *QuoteService) Accept(ctx context.Context, id string) (*domain.Quote, error) {
	return Do[*domain.Quote](ctx, s.t, http.MethodPost, fmt.Sprintf("/quotes/%s/accept/", id), nil)
}

// Decline declines a mover's priced quote.
func (s *QuoteService) Decline(ctx context.Context, id string) (*domain.Quote, error) {
	return Do[*domain.Quote](ctx, s.t, http.MethodPost, fmt.Sprintf("/quotes/%s/decline/", id), nil)
}
