package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// AnalyticsService maps the analytics resource feeding the admin dashboard.
type AnalyticsService struct {
	t *Transport
}

func NewAnalyticsService(t *Transport) *AnalyticsService {
	return &AnalyticsService{t: t}
}

// Dashboard fetches the dashboard summary card.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	return Do[*domain.DashboardSummary](ctx, s.t, http.MethodGet, "/analytics/dashboard/", nil)
}

// RevenueSeries fetches the revenue series at the given granularity
// (daily, weekly, or monthly).
func (s *AnalyticsService) RevenueSeries(ctx context.Context, granularity string) ([]domain.RevenuePoint, error) {
	return DoList[domain.RevenuePoint](ctx, s.t, "/analytics/revenue/", url.Values{"granularity": {granularity}})
}

// OrderStats fetches order counters by lifecycle state.
func (s *AnalyticsService) OrderStats(ctx context.Context) (*domain.OrderStats, error) {
	return Do[*domain.OrderStats](ctx, s.t, http.MethodGet, "/analytics/orders/", nil)
}

// CustomerStats fetches customer acquisition counters.
func (s *AnalyticsService) CustomerStats(ctx context.Context) (*domain.CustomerStats, error) {
	return Do[*domain.CustomerStats](ctx, s.t, http.MethodGet, "/analytics/customers/", nil)
}

// PopularItems lists the most-requested item types.
func (s *AnalyticsService) PopularItems(ctx context.Context) ([]domain.PopularItem, error) {
	return DoList[domain.PopularItem](ctx, s.t, "/analytics/popular-items/", nil)
}

// DailyAggregates lists precomputed daily activity.
func (s *AnalyticsService) DailyAggregates(ctx context.Context) ([]domain.DailyAggregate, error) {
	return DoList[domain.DailyAggregate](ctx, s.t, "/analytics/aggregates/daily/", nil)
}

// MonthlyAggregates lists precomputed monthly activity.
func (s *AnalyticsService) MonthlyAggregates(ctx context.Context) ([]domain.MonthlyAggregate, error) {
	return DoList[domain.MonthlyAggregate](ctx, s.t, "/analytics/aggregates/monthly/", nil)
}

// RecomputeMonthly triggers re-aggregation of one month.
func (s *AnalyticsService) RecomputeMonthly(ctx context.Context, year, month int) (*domain.MonthlyAggregate, error) {
	return Do[*domain.MonthlyAggregate](ctx, s.t, http.MethodPost, "/analytics/aggregates/monthly/recompute/", map[string]int{
		"year":  year,
		"month": month,
	})
}

// ComparePeriods contrasts the current period against the previous one.
func (s *AnalyticsService) ComparePeriods(ctx context.Context, granularity string) (*domain.PeriodComparison, error) {
	return DoQuery[*domain.PeriodComparison](ctx, s.t, http.MethodGet, "/analytics/compare/", url.Values{"granularity": {granularity}}, nil)
}

// Export downloads the analytics export as raw bytes (CSV or XLSX, chosen by
// the backend via format).
func (s *AnalyticsService) Export(ctx context.Context, format string, year int) ([]byte, error) {
	return DoRaw(ctx, s.t, http.MethodGet, "/analytics/export/", url.Values{
		"format": {format},
		"year":   {strconv.Itoa(year)},
	})
}

// QuickStats fetches the always-visible quick-stats widget feed.
func (s *AnalyticsService) QuickStats(ctx context.Context) (*domain.QuickStats, error) {
	return Do[*domain.QuickStats](ctx, s.t, http.MethodGet, "/analytics/quick-stats/", nil)
}
