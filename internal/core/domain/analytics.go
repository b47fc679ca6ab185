package domain

// Granularity values accepted by the revenue series endpoint.
const (
	GranularityDaily   = "daily"
	GranularityWeekly  = "weekly"
	GranularityMonthly = "monthly"
)

// DashboardSummary is the admin dashboard header card.
type DashboardSummary struct {
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
	ActiveMovers int     `json:"active_movers"`
	NewCustomers int     `json:"new_customers"`
}

// RevenuePoint is one bucket of the revenue series at the requested
// granularity.
type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// OrderStats aggregates order counts by lifecycle state.
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// CustomerStats aggregates customer acquisition and retention counters.
type CustomerStats struct {
	Total     int     `json:"total"`
	New       int     `json:"new"`
	Returning int     `json:"returning"`
	ChurnRate float64 `json:"churn_rate,omitempty"`
}

// PopularItem is one row of the most-requested item types widget.
type PopularItem struct {
	ItemTypeID string `json:"item_type_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// DailyAggregate is one precomputed day of platform activity.
type DailyAggregate struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// MonthlyAggregate is one precomputed month; recomputation can be triggered
// explicitly by year and month.
type MonthlyAggregate struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// PeriodComparison contrasts the current period with the previous one.
type PeriodComparison struct {
	Current      RevenuePoint `json:"current"`
	Previous     RevenuePoint `json:"previous"`
	RevenueDelta float64      `json:"revenue_delta_pct"`
	OrdersDelta  float64      `json:"orders_delta_pct"`
}

// QuickStats feeds the small always-visible stats widget.
type QuickStats struct {
	OrdersToday    int     `json:"orders_today"`
	RevenueToday   float64 `json:"revenue_today"`
	PendingQuotes  int     `json:"pending_quotes"`
	UnreadMessages int     `json:"unread_messages"`
}
