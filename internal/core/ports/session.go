package ports

import (
	"context"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// AuthAPI is the slice of the backend auth resource the session store
// consumes. Implemented by client.AuthService.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.TokenPair, error)
	GoogleLogin(ctx context.Context, credential, roleHint string) (domain.TokenPair, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.TokenPair, error)
	Logout(ctx context.Context, refresh string) error
	Profile(ctx context.Context) (*domain.User, error)
}

// CredentialStore persists the access/refresh token pair. Implementations
// must keep the pair atomic: both values stored together, and a partial pair
// reported as absent on Load.
type CredentialStore interface {
	Load() (domain.TokenPair, bool, error)
	Save(pair domain.TokenPair) error
	Clear() error
}

// Navigator receives the navigation side effects the session store signals
// after login and logout. In movectl this is informational; a richer
// front-end routes on it.
type Navigator interface {
	NavigateTo(route string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route string)

func (f NavigatorFunc) NavigateTo(route string) { f(route) }
