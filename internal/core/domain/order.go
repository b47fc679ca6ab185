package domain

import "time"

const (
	QuotePending  = "pending"
	QuoteAccepted = "accepted"
	QuoteDeclined = "declined"
)

// QuoteItem is one line of a quote request.
type QuoteItem struct {
	ItemTypeID string `json:"item_type_id"`
	Quantity   int    `json:"quantity"`
}

// Quote is a customer's request for a move and the mover's priced answer.
type Quote struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	MoverID     string      `json:"mover_id,omitempty"`
	Status      string      `json:"status"`
	FromAddress string      `json:"from_address"`
	ToAddress   string      `json:"to_address"`
	MoveDate    string      `json:"move_date,omitempty"`
	Items       []QuoteItem `json:"items,omitempty"`
	TotalPrice  float64     `json:"total_price,omitempty"`
	CreatedAt   time.Time   `json:"created_at,omitzero"`
}

const (
	BookingScheduled = "scheduled"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is a confirmed, scheduled move on a mover's calendar.
type Booking struct {
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id,omitempty"`
	CustomerID  string    `json:"customer_id"`
	MoverID     string    `json:"mover_id"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at,omitzero"`
	FromAddress string    `json:"from_address,omitempty"`
	ToAddress   string    `json:"to_address,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// AvailabilitySlot is one calendar day in a mover's availability feed.
type AvailabilitySlot struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// Comparison is a customer's saved side-by-side of mover offers.
type Comparison struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	Entries    []ComparisonEntry `json:"entries,omitempty"`
	CreatedAt  time.Time         `json:"created_at,omitzero"`
}

// ComparisonEntry is one mover's offer inside a comparison.
type ComparisonEntry struct {
	ID        string  `json:"id"`
	MoverID   string  `json:"mover_id"`
	MoverName string  `json:"mover_name,omitempty"`
	Price     float64 `json:"price"`
	Rating    float64 `json:"rating,omitempty"`
}

// Notification is a single feed entry for the bell menu.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
