package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// MoverAdminService maps the admin mover-moderation resource.
type MoverAdminService struct {
	t *Transport
}

func NewMoverAdminService(t *Transport) *MoverAdminService {
	return &MoverAdminService{t: t}
}

// List returns mover accounts awaiting or past moderation.
func (s *MoverAdminService) List(ctx context.Context) ([]domain.MoverAccount, error) {
	return DoList[domain.MoverAccount](ctx, s.t, "/admin/movers/", nil)
}

// Get fetches one mover account.
func (s *MoverAdminService) Get(ctx context.Context, id string) (*domain.MoverAccount, error) {
	return Do[*domain.MoverAccount](ctx, s.t, http.MethodGet, fmt.Sprintf("/admin/movers/%s/", id), nil)
}

// Approve admits a mover to the marketplace.
func (s *MoverAdminService) Approve(ctx context.Context, id string) (*domain.MoverAccount, error) {
	return Do[*domain.MoverAccount](ctx, s.t, http.MethodPost, fmt.Sprintf("/admin/movers/%s/approve/", id), nil)
}

// Reject declines a mover application.
func (s *MoverAdminService) Reject(ctx context.Context, id, reason string) (*domain.MoverAccount, error) {
	return Do[*domain.MoverAccount](ctx, s.t, http.MethodPost, fmt.Sprintf("/admin/movers/%s/reject/", id), map[string]string{"reason": reason})
}
