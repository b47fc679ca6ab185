// Package mockapi is an in-memory stand-in for the marketplace backend. It
// speaks the same REST surface the client targets — token-pair auth, the
// paginated-or-bare list envelope, validator-enforced payload rules — so
// integration tests and local development run without the real service.
package mockapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// Config controls token issuance for the mock backend.
type Config struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	// Metrics enables the echoprometheus middleware and /metrics endpoint.
	// Off in tests to avoid duplicate collector registration.
	Metrics bool
}

// errorResponse is the canonical error envelope: {"detail": "<message>"},
// matching what the client's APIError extraction expects.
type errorResponse struct {
	Detail string `json:"detail"`
}

// New builds the Echo instance with all mock routes registered.
func New(cfg Config, log zerolog.Logger) *echo.Echo {
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "mock-secret"
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if cfg.Metrics {
		e.Use(echoprometheus.NewMiddleware("movemock"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	store := newMemStore()
	tokens := newTokenManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	authed := requireAuth(tokens)

	auth := &authHandler{store: store, tokens: tokens}
	e.POST("/auth/register/", auth.Register)
	e.POST("/auth/login/", auth.Login)
	e.POST("/auth/google/", auth.GoogleLogin)
	e.POST("/auth/logout/", auth.Logout)
	e.GET("/auth/profile/", auth.Profile, authed)
	e.PATCH("/auth/profile/", auth.UpdateProfile, authed)
	e.POST("/auth/phone/request/", auth.RequestPhoneVerification, authed)
	e.POST("/auth/phone/confirm/", auth.ConfirmPhoneVerification, authed)
	e.POST("/auth/password/", auth.ChangePassword, authed)
	e.GET("/auth/mover-profile/", auth.MoverProfile, authed, requireRole(domain.RoleMover))
	e.PATCH("/auth/mover-profile/", auth.UpdateMoverProfile, authed, requireRole(domain.RoleMover))

	pricing := &pricingHandler{store: store}
	movers := e.Group("/movers", authed, requireRole(domain.RoleMover))
	movers.GET("/pricing-factors/", pricing.PricingFactors)
	movers.PATCH("/pricing-factors/", pricing.UpdatePricingFactors)
	movers.GET("/item-types/", pricing.ItemTypes)
	movers.GET("/pricing/", pricing.PriceOverrides)
	movers.POST("/pricing/", pricing.CreatePriceOverride)
	movers.PATCH("/pricing/:id/", pricing.UpdatePriceOverride)
	movers.DELETE("/pricing/:id/", pricing.DeletePriceOverride)
	movers.GET("/categories/", pricing.Categories)

	feed := &feedHandler{store: store}
	e.GET("/notifications/", feed.Notifications, authed)
	e.GET("/notifications/unread-count/", feed.UnreadCount, authed)
	e.PATCH("/notifications/:id/", feed.MarkRead, authed)
	e.POST("/notifications/mark-all-read/", feed.MarkAllRead, authed)
	e.GET("/quotes/", feed.Quotes, authed)
	e.POST("/quotes/", feed.CreateQuote, authed)
	e.GET("/bookings/", feed.Bookings, authed)

	analytics := &analyticsHandler{store: store}
	admin := e.Group("/analytics", authed, requireRole(domain.RoleAdmin))
	admin.GET("/dashboard/", analytics.Dashboard)
	admin.GET("/revenue/", analytics.RevenueSeries)
	admin.GET("/quick-stats/", analytics.QuickStats)

	return e
}

// newHTTPErrorHandler maps known store errors to deterministic status codes
// and renders the {"detail": …} envelope. Unexpected errors are logged and
// answered with a generic 500.
func newHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, errInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, errUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, errUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, errInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
