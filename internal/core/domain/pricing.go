package domain

import "time"

// PricingFactors is a mover's global pricing settings: one record per mover,
// no list semantics. All surcharge and multiplier computation happens
// server-side; the client only reads and patches these values.
type PricingFactors struct {
	ID                  string    `json:"id"`
	MoverID             string    `json:"mover_id"`
	BaseFee             float64   `json:"base_fee"`
	PerKmRate           float64   `json:"per_km_rate"`
	FloorSurcharge      float64   `json:"floor_surcharge"`
	NoElevatorSurcharge float64   `json:"no_elevator_surcharge"`
	WeekendMultiplier   float64   `json:"weekend_multiplier"`
	ExpressMultiplier   float64   `json:"express_multiplier"`
	MinimumCharge       float64   `json:"minimum_charge"`
	UpdatedAt           time.Time `json:"updated_at,omitzero"`
}

// ItemType is a catalog entry as seen by movers, with the effective price
// already overlaid server-side (base price or the mover's override).
type ItemType struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CategoryID     string  `json:"category_id"`
	CategoryName   string  `json:"category_name,omitempty"`
	BasePrice      float64 `json:"base_price"`
	EffectivePrice float64 `json:"effective_price"`
	HasOverride    bool    `json:"has_override"`
	VolumeM3       float64 `json:"volume_m3,omitempty"`
}

// PriceOverride is a mover-specific price for a single item type.
type PriceOverride struct {
	ID         string    `json:"id"`
	MoverID    string    `json:"mover_id"`
	ItemTypeID string    `json:"item_type_id"`
	Price      float64   `json:"price"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}

// Category groups item types in the catalog.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug,omitempty"`
	ItemCount int    `json:"item_count,omitempty"`
}
