package client

// Client bundles all resource service groups over one shared transport.
type Client struct {
	transport *Transport

	Auth          *AuthService
	Pricing       *PricingService
	Admin         *AdminService
	Analytics     *AnalyticsService
	Movers        *MoverAdminService
	Notifications *NotificationService
	Scheduling    *SchedulingService
	Quotes        *QuoteService
	Comparisons   *ComparisonService
}

// New creates a Client rooted at baseURL.
func New(baseURL string, opts ...TransportOption) *Client {
	t := NewTransport(baseURL, opts...)
	return &Client{
		transport:     t,
		Auth:          NewAuthService(t),
		Pricing:       NewPricingService(t),
		Admin:         NewAdminService(t),
		Analytics:     NewAnalyticsService(t),
		Movers:        NewMoverAdminService(t),
		Notifications: NewNotificationService(t),
		Scheduling:    NewSchedulingService(t),
		Quotes:        NewQuoteService(t),
		Comparisons:   NewComparisonService(t),
	}
}

// Transport exposes the shared transport for callers that need to wire a
// token source or inspect configuration.
func (c *Client) Transport() *Transport { return c.transport }
