package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleMover    = "mover"
	RoleAdmin    = "admin"
)

var ErrGoogleUnavailable = errors.New("google sign-in is not configured")

// User models an authenticated actor in the marketplace. UserType is the
// discriminant consumed by navigation and guard logic.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name,omitempty"`
	LastName      string    `json:"last_name,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	PhoneVerified bool      `json:"phone_verified,omitempty"`
	UserType      string    `json:"user_type"`
	CompanyName   string    `json:"company_name,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
	UpdatedAt     time.Time `json:"updated_at,omitzero"`
}

// TokenPair is the opaque credential pair issued by the backend on login and
// registration. Both values travel together; a partial pair is never valid.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Complete reports whether both halves of the pair are present.
func (p TokenPair) Complete() bool {
	return p.Access != "" && p.Refresh != ""
}

// RegisterRequest carries the fields of a new account. CompanyName is
// required by the backend when UserType is mover; the client forwards the
// payload as-is and surfaces the backend's verdict.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	UserType    string `json:"user_type"`
	CompanyName string `json:"company_name,omitempty"`
}

// MoverProfile is the mover-specific sub-profile attached to a mover account.
type MoverProfile struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	CompanyName string  `json:"company_name"`
	Description string  `json:"description,omitempty"`
	ServiceArea string  `json:"service_area,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Status      string  `json:"status"`
}

// MoverAccount is the moderation view of a mover used by admin screens.
type MoverAccount struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at,omitzero"`
}

const (
	MoverStatusPending  = "pending"
	MoverStatusApproved = "approved"
	MoverStatusRejected = "rejected"
)
