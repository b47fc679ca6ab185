package mockapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

type authHandler struct {
	store  *memStore
	tokens *tokenManager
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	UserType    string `json:"user_type" validate:"required,oneof=customer mover"`
	CompanyName string `json:"company_name" validate:"required_if=UserType mover"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
	UserType   string `json:"user_type"`
}

func (h *authHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.store.createAccount(domain.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		UserType:    req.UserType,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return err
	}

	pair, err := h.tokens.IssuePair(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pair)
}

func (h *authHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.store.authenticate(req.Email, req.Password)
	if err != nil {
		return err
	}

	pair, err := h.tokens.IssuePair(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pair)
}

// GoogleLogin accepts a demo credential of the form "google:<email>". An
// unknown email registers a new account using the optional role hint,
// mirroring the consume-hint-on-first-registration contract.
func (h *authHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email, ok := strings.CutPrefix(req.Credential, "google:")
	if !ok || email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid google credential")
	}

	user, err := h.store.userByEmail(email)
	if err != nil {
		role := req.UserType
		if role != domain.RoleCustomer && role != domain.RoleMover {
			role = domain.RoleCustomer
		}
		user, err = h.store.createAccount(domain.RegisterRequest{
			Email:       email,
			Password:    "google-" + email,
			UserType:    role,
			CompanyName: "Unnamed Moving Co.",
		})
		if err != nil {
			return err
		}
	}

	pair, err := h.tokens.IssuePair(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pair)
}

func (h *authHandler) Logout(c echo.Context) error {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Refresh != "" {
		h.store.revokeRefresh(req.Refresh)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *authHandler) Profile(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	user, err := h.store.userByID(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *authHandler) UpdateProfile(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var partial map[string]any
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.store.updateUser(id, func(acc *account) {
		if v, ok := partial["first_name"].(string); ok {
			acc.user.FirstName = v
		}
		if v, ok := partial["last_name"].(string); ok {
			acc.user.LastName = v
		}
		if v, ok := partial["phone"].(string); ok {
			acc.user.Phone = v
			acc.user.PhoneVerified = false
		}
		if v, ok := partial["company_name"].(string); ok {
			acc.user.CompanyName = v
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *authHandler) RequestPhoneVerification(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	if _, err := h.store.updateUser(id, func(acc *account) {
		acc.phonePending = true
	}); err != nil {
		return err
	}
	// A real backend texts a code; the mock always "sends" the demo code.
	return c.NoContent(http.StatusAccepted)
}

func (h *authHandler) ConfirmPhoneVerification(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Code != demoVerificationCode {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid verification code")
	}

	if _, err := h.store.updateUser(id, func(acc *account) {
		acc.user.PhoneVerified = true
		acc.phonePending = false
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *authHandler) ChangePassword(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req struct {
		Current string `json:"current_password"`
		New     string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(req.New) < 8 {
		return echo.NewHTTPError(http.StatusBadRequest, "new_password must be at least 8 characters")
	}

	user, err := h.store.userByID(id)
	if err != nil {
		return err
	}
	if _, err := h.store.authenticate(user.Email, req.Current); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.New), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := h.store.updateUser(id, func(acc *account) {
		acc.passwordHash = hash
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *authHandler) MoverProfile(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	user, err := h.store.userByID(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moverProfileOf(user))
}

func (h *authHandler) UpdateMoverProfile(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var partial map[string]any
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.store.updateUser(id, func(acc *account) {
		if v, ok := partial["company_name"].(string); ok {
			acc.user.CompanyName = v
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moverProfileOf(user))
}

func moverProfileOf(user *domain.User) *domain.MoverProfile {
	return &domain.MoverProfile{
		ID:          "mp-" + user.ID,
		UserID:      user.ID,
		CompanyName: user.CompanyName,
		Status:      domain.MoverStatusApproved,
	}
}
