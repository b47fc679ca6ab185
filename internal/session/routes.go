package session

import "github.com/movehub/marketplace-client/internal/core/domain"

// Routes signalled to the Navigator after auth transitions.
const (
	RouteLogin     = "/login"
	RouteAdminHome = "/admin"
	RouteMoverHome = "/mover"
	RouteNewOrder  = "/orders/new"
)

// LandingRoute maps a user type to its post-login landing page.
func LandingRoute(userType string) string {
	switch userType {
	case domain.RoleAdmin:
		return RouteAdminHome
	case domain.RoleMover:
		return RouteMoverHome
	default:
		return RouteNewOrder
	}
}
