package mockapi

import (
	"net/http"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// respondList renders items as the paginated envelope by default, or as a
// bare array when ?format=plain is sent. Both shapes exist in the real
// backend; serving both lets clients exercise their normalization end to end.
func respondList(c echo.Context, items any) error {
	if c.QueryParam("format") == "plain" {
		return c.JSON(http.StatusOK, items)
	}
	count := 0
	if v := reflect.ValueOf(items); v.Kind() == reflect.Slice {
		count = v.Len()
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":    count,
		"next":     nil,
		"previous": nil,
		"results":  items,
	})
}

type pricingHandler struct {
	store *memStore
}

func (h *pricingHandler) PricingFactors(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	h.store.mu.RLock()
	factors, ok := h.store.factors[id]
	h.store.mu.RUnlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "pricing factors not found")
	}
	return c.JSON(http.StatusOK, factors)
}

func (h *pricingHandler) UpdatePricingFactors(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var partial map[string]any
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	factors, ok := h.store.factors[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "pricing factors not found")
	}
	applyFloat := func(key string, dst *float64) {
		if v, ok := partial[key].(float64); ok {
			*dst = v
		}
	}
	applyFloat("base_fee", &factors.BaseFee)
	applyFloat("per_km_rate", &factors.PerKmRate)
	applyFloat("floor_surcharge", &factors.FloorSurcharge)
	applyFloat("no_elevator_surcharge", &factors.NoElevatorSurcharge)
	applyFloat("weekend_multiplier", &factors.WeekendMultiplier)
	applyFloat("express_multiplier", &factors.ExpressMultiplier)
	applyFloat("minimum_charge", &factors.MinimumCharge)
	factors.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, factors)
}

func (h *pricingHandler) ItemTypes(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	h.store.mu.RLock()
	items := make([]domain.ItemType, len(h.store.itemTypes))
	copy(items, h.store.itemTypes)
	for i := range items {
		for _, ov := range h.store.overrides {
			if ov.MoverID == id && ov.ItemTypeID == items[i].ID && ov.Active {
				items[i].EffectivePrice = ov.Price
				items[i].HasOverride = true
			}
		}
	}
	h.store.mu.RUnlock()
	return respondList(c, items)
}

func (h *pricingHandler) PriceOverrides(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	h.store.mu.RLock()
	overrides := make([]domain.PriceOverride, 0)
	for _, ov := range h.store.overrides {
		if ov.MoverID == id {
			overrides = append(overrides, *ov)
		}
	}
	h.store.mu.RUnlock()
	return respondList(c, overrides)
}

func (h *pricingHandler) CreatePriceOverride(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req struct {
		ItemTypeID string  `json:"item_type_id" validate:"required"`
		Price      float64 `json:"price" validate:"required,gt=0"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	override := &domain.PriceOverride{
		ID:         uuid.NewString(),
		MoverID:    id,
		ItemTypeID: req.ItemTypeID,
		Price:      req.Price,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	h.store.mu.Lock()
	h.store.overrides[override.ID] = override
	h.store.mu.Unlock()
	return c.JSON(http.StatusCreated, override)
}

func (h *pricingHandler) UpdatePriceOverride(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var partial map[string]any
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	override, ok := h.store.overrides[c.Param("id")]
	if !ok || override.MoverID != id {
		return echo.NewHTTPError(http.StatusNotFound, "price override not found")
	}
	if v, ok := partial["price"].(float64); ok {
		override.Price = v
	}
	if v, ok := partial["active"].(bool); ok {
		override.Active = v
	}
	return c.JSON(http.StatusOK, override)
}

func (h *pricingHandler) DeletePriceOverride(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	override, ok := h.store.overrides[c.Param("id")]
	if !ok || override.MoverID != id {
		return echo.NewHTTPError(http.StatusNotFound, "price override not found")
	}
	delete(h.store.overrides, override.ID)
	return c.NoContent(http.StatusNoContent)
}

func (h *pricingHandler) Categories(c echo.Context) error {
	h.store.mu.RLock()
	categories := make([]domain.Category, len(h.store.categories))
	copy(categories, h.store.categories)
	h.store.mu.RUnlock()
	return respondList(c, categories)
}

type feedHandler struct {
	store *memStore
}

func (h *feedHandler) Notifications(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	h.store.mu.RLock()
	items := append([]domain.Notification(nil), h.store.notifications[id]...)
	h.store.mu.RUnlock()
	if items == nil {
		items = []domain.Notification{}
	}
	return respondList(c, items)
}

func (h *feedHandler) UnreadCount(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	h.store.mu.RLock()
	count := 0
	for _, n := range h.store.notifications[id] {
		if !n.Read {
			count++
		}
	}
	h.store.mu.RUnlock()
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

func (h *feedHandler) MarkRead(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	feed := h.store.notifications[id]
	for i := range feed {
		if feed[i].ID == c.Param("id") {
			feed[i].Read = true
			return c.JSON(http.StatusOK, feed[i])
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "notification not found")
}

func (h *feedHandler) MarkAllRead(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	h.store.mu.Lock()
	feed := h.store.notifications[id]
	for i := range feed {
		feed[i].Read = true
	}
	h.store.mu.Unlock()
	return c.NoContent(http.StatusNoContent)
}

func (h *feedHandler) Quotes(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	h.store.mu.RLock()
	quotes := make([]domain.Quote, 0)
	for _, q := range h.store.quotes {
		if q.CustomerID == id || q.MoverID == id {
			quotes = append(quotes, *q)
		}
	}
	h.store.mu.RUnlock()
	return respondList(c, quotes)
}

func (h *feedHandler) CreateQuote(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req struct {
		FromAddress string             `json:"from_address" validate:"required"`
		ToAddress   string             `json:"to_address" validate:"required"`
		MoveDate    string             `json:"move_date"`
		Items       []domain.QuoteItem `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote := &domain.Quote{
		ID:          uuid.NewString(),
		CustomerID:  id,
		Status:      domain.QuotePending,
		FromAddress: req.FromAddress,
		ToAddress:   req.ToAddress,
		MoveDate:    req.MoveDate,
		Items:       req.Items,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.mu.Lock()
	h.store.quotes[quote.ID] = quote
	h.store.mu.Unlock()
	return c.JSON(http.StatusCreated, quote)
}

func (h *feedHandler) Bookings(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	h.store.mu.RLock()
	bookings := make([]domain.Booking, 0)
	for _, b := range h.store.bookings {
		if b.CustomerID == id || b.MoverID == id {
			bookings = append(bookings, *b)
		}
	}
	h.store.mu.RUnlock()
	return respondList(c, bookings)
}

type analyticsHandler struct {
	store *memStore
}

func (h *analyticsHandler) Dashboard(c echo.Context) error {
	h.store.mu.RLock()
	movers := 0
	for _, acc := range h.store.accounts {
		if acc.user.UserType == domain.RoleMover {
			movers++
		}
	}
	summary := domain.DashboardSummary{
		TotalOrders:  len(h.store.bookings),
		ActiveMovers: movers,
		NewCustomers: len(h.store.accounts) - movers,
	}
	h.store.mu.RUnlock()
	return c.JSON(http.StatusOK, summary)
}

func (h *analyticsHandler) RevenueSeries(c echo.Context) error {
	granularity := c.QueryParam("granularity")
	switch granularity {
	case domain.GranularityDaily, domain.GranularityWeekly, domain.GranularityMonthly:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "granularity must be one of: daily, weekly, monthly")
	}
	// Deterministic demo series.
	points := []domain.RevenuePoint{
		{Period: "p1", Revenue: 1200, Orders: 14},
		{Period: "p2", Revenue: 1810, Orders: 21},
		{Period: "p3", Revenue: 990, Orders: 9},
	}
	return respondList(c, points)
}

func (h *analyticsHandler) QuickStats(c echo.Context) error {
	h.store.mu.RLock()
	pending := 0
	for _, q := range h.store.quotes {
		if q.Status == domain.QuotePending {
			pending++
		}
	}
	stats := domain.QuickStats{PendingQuotes: pending}
	h.store.mu.RUnlock()
	return c.JSON(http.StatusOK, stats)
}
