package mockapi

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

var errInvalidToken = errors.New("invalid token")

// tokenManager issues and verifies the access/refresh pair. Both tokens are
// HS256 over the same secret, discriminated by a typ claim.
type tokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newTokenManager(secret string, accessTTL, refreshTTL time.Duration) *tokenManager {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &tokenManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssuePair mints a fresh access/refresh pair for user.
func (m *tokenManager) IssuePair(user *domain.User) (domain.TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       user.ID,
		"user_type": user.UserType,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       now.Add(m.accessTTL).Unix(),
	})
	accessStr, err := access.SignedString(m.secret)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"typ": "refresh",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(m.refreshTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString(m.secret)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{Access: accessStr, Refresh: refreshStr}, nil
}

// VerifyAccess checks an access token and returns the subject and user type.
func (m *tokenManager) VerifyAccess(tokenString string) (userID, userType string, err error) {
	claims, err := m.verify(tokenString, "access")
	if err != nil {
		return "", "", err
	}
	userID, _ = claims["sub"].(string)
	userType, _ = claims["user_type"].(string)
	if userID == "" {
		return "", "", errInvalidToken
	}
	return userID, userType, nil
}

// VerifyRefresh checks a refresh token and returns the subject.
func (m *tokenManager) VerifyRefresh(tokenString string) (string, error) {
	claims, err := m.verify(tokenString, "refresh")
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errInvalidToken
	}
	return sub, nil
}

func (m *tokenManager) verify(tokenString, typ string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, errInvalidToken
	}
	if claims["typ"] != typ {
		return nil, errInvalidToken
	}
	return claims, nil
}
