package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// SchedulingService maps the booking/calendar resource.
type SchedulingService struct {
	t *Transport
}

func NewSchedulingService(t *Transport) *SchedulingService {
	return &SchedulingService{t: t}
}

// List returns the caller's bookings.
func (s *SchedulingService) List(ctx context.Context) ([]domain.Booking, error) {
	return DoList[domain.Booking](ctx, s.t, "/bookings/", nil)
}

// Get fetches one booking.
func (s *SchedulingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return Do[*domain.Booking](ctx, s.t, http.MethodGet, fmt.Sprintf("/bookings/%s/", id), nil)
}

// Create schedules a move from an accepted quote.
func (s *SchedulingService) Create(ctx context.Context, quoteID, scheduledAt string) (*domain.Booking, error) {
	return Do[*domain.Booking](ctx, s.t, http.MethodPost, "/bookings/", map[string]string{
		"quote_id":     quoteID,
		"scheduled_at": scheduledAt,
	})
}

// Update patches booking fields (reschedule, status change).
func (s *SchedulingService) Update(ctx context.Context, id string, partial map[string]any) (*domain.Booking, error) {
	return Do[*domain.Booking](ctx, s.t, http.MethodPatch, fmt.Sprintf("/bookings/%s/", id), partial)
}

// Cancel cancels a booking.
func (s *SchedulingService) Cancel(ctx context.Context, id string) error {
	return DoNoContent(ctx, s.t, http.MethodPost, fmt.Sprintf("/bookings/%s/cancel/", id), nil)
}

// Availability lists a mover's open calendar days in the given month
// (YYYY-MM).
func (s *SchedulingService) Availability(ctx context.Context, moverID, month string) ([]domain.AvailabilitySlot, error) {
	return DoList[domain.AvailabilitySlot](ctx, s.t, fmt.Sprintf("/bookings/availability/%s/", moverID), url.Values{"month": {month}})
}
