package client

import (
	"context"
	"net/http"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// AuthService maps the backend auth resource. It satisfies ports.AuthAPI so
// the session store can consume it without depending on this package's
// transport details.
type AuthService struct {
	t *Transport
}

func NewAuthService(t *Transport) *AuthService {
	return &AuthService{t: t}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	Credential string `json:"credential"`
	UserType   string `json:"user_type,omitempty"`
}

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

// Login exchanges email/password for a credential pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	return Do[domain.TokenPair](ctx, s.t, http.MethodPost, "/auth/login/", loginRequest{Email: email, Password: password})
}

// GoogleLogin exchanges a Google-issued identity token for a credential pair.
// roleHint is consumed server-side only on first registration.
func (s *AuthService) GoogleLogin(ctx context.Context, credential, roleHint string) (domain.TokenPair, error) {
	return Do[domain.TokenPair](ctx, s.t, http.MethodPost, "/auth/google/", googleLoginRequest{Credential: credential, UserType: roleHint})
}

// Register creates an account and returns its first credential pair.
// Role-conditional validation (company_name for movers) is the backend's;
// its rejection propagates untouched.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (domain.TokenPair, error) {
	return Do[domain.TokenPair](ctx, s.t, http.MethodPost, "/auth/register/", req)
}

// Logout invalidates the refresh token server-side.
func (s *AuthService) Logout(ctx context.Context, refresh string) error {
	return DoNoContent(ctx, s.t, http.MethodPost, "/auth/logout/", logoutRequest{Refresh: refresh})
}

// Profile fetches the authenticated user's profile.
func (s *AuthService) Profile(ctx context.Context) (*domain.User, error) {
	return Do[*domain.User](ctx, s.t, http.MethodGet, "/auth/profile/", nil)
}

// UpdateProfile patches profile fields and returns the updated record.
func (s *AuthService) UpdateProfile(ctx context.Context, partial map[string]any) (*domain.User, error) {
	return Do[*domain.User](ctx, s.t, http.MethodPatch, "/auth/profile/", partial)
}

// RequestPhoneVerification asks the backend to send a code to phone. The
// step semantics are the backend's; this is an opaque pass-through.
func (s *AuthService) RequestPhoneVerification(ctx context.Context, phone string) error {
	return DoNoContent(ctx, s.t, http.MethodPost, "/auth/phone/request/", map[string]string{"phone": phone})
}

// ConfirmPhoneVerification submits the received code.
func (s *AuthService) ConfirmPhoneVerification(ctx context.Context, code string) error {
	return DoNoContent(ctx, s.t, http.MethodPost, "/auth/phone/confirm/", map[string]string{"code": code})
}

// ChangePassword replaces the account password.
func (s *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	return DoNoContent(ctx, s.t, http.MethodPost, "/auth/password/", map[string]string{
		"current_password": current,
		"new_password":     next,
	})
}

// MoverProfile fetches the mover sub-profile of the authenticated mover.
func (s *AuthService) MoverProfile(ctx context.Context) (*domain.MoverProfile, error) {
	return Do[*domain.MoverProfile](ctx, s.t, http.MethodGet, "/auth/mover-profile/", nil)
}

// UpdateMoverProfile patches mover sub-profile fields.
func (s *AuthService) UpdateMoverProfile(ctx context.Context, partial map[string]any) (*domain.MoverProfile, error) {
	return Do[*domain.MoverProfile](ctx, s.t, http.MethodPatch, "/auth/mover-profile/", partial)
}
