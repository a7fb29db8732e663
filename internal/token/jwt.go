package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avoronov/notepad-server/internal/model"
)

// Claims represents JWT claims. The subject is the user's email.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT implements TokenManager backed by symmetric HMAC signing.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// tokenTTL is fixed: a token is valid for one hour from issuance and is never
// revoked server-side before that.
const tokenTTL = 60 * time.Minute

// Issue creates a signed token whose subject claim is the given identity.
func (j *JWT) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates signature and expiry and extracts the subject claim.
// Every failure maps to exactly one of two sentinel errors: ErrTokenExpired
// for a well-signed but stale token, ErrTokenInvalid for everything else,
// including a missing subject claim. Which structural check failed is not
// reported.
func (j *JWT) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrTokenInvalid
	}
	if !token.Valid {
		return "", model.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", model.ErrTokenInvalid
	}
	return claims.Subject, nil
}
