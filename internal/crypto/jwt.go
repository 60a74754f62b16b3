package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const (
	tokenIssuer   = "passforge"
	tokenAudience = "passforge-api"
	tokenSubject  = "owner"
)

// NewSessionToken creates a signed HS256 session token. There is a single
// owner, so the claims carry no identity beyond the pinned subject.
func NewSessionToken(secret string, expiry time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   tokenSubject,
		Audience:  jwt.ClaimStrings{tokenAudience},
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateSessionToken checks a session token's signature, issuer, audience,
// subject and expiry.
func ValidateSessionToken(tokenString, secret string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithSubject(tokenSubject),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
