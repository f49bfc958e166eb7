package devserver

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/releve-app/releve/internal/client/models"
)

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 30 * 24 * time.Hour
)

var errInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// issueTokens mints an HS256 access/refresh pair for the given user. The
// client treats both as opaque; only this server inspects them.
func issueTokens(secret []byte, userID string) (models.TokenPair, error) {
	now := time.Now()
	sign := func(typ string, ttl time.Duration) (string, error) {
		claims := tokenClaims{
			Type: typ,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			},
		}
		return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	}

	access, err := sign("access", accessTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := sign("refresh", refreshTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// parseAccessToken verifies signature and expiry and returns the subject.
// Refresh tokens are rejected here; there is no refresh endpoint.
func parseAccessToken(secret []byte, raw string) (string, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.Type != "access" || claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}
