package utils // package utils provides helper functions for session tokens and hashing

import (
	"errors"
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and verifying signed tokens
)

// SessionToken represents a signed session token along with its expiry.
// The Token field contains the serialized JWT string; Exp records when the
// token stops being accepted. Session tokens are minted at login, carried
// back by the client in an HttpOnly cookie, and are never stored server
// side: expiry is the only revocation mechanism.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// ErrInvalidToken is returned by ParseSessionToken for any token that does
// not verify: bad signature, wrong signing method, malformed claims or an
// expired token. Callers are not told which.
var ErrInvalidToken = errors.New("invalid or expired token")

// NewSessionToken builds and signs an HS256 JWT for a user. The payload is
// deliberately minimal: the user id under "id", plus iat/exp. The ttlMin
// parameter controls how many minutes the token stays valid.
func NewSessionToken(secret string, userID uint64, ttlMin int) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies the signature and expiry of a session token in
// a single Parse call and returns the embedded user id. The token is never
// decoded without verification; jwt.Parse rejects expired tokens through
// the registered exp claim.
func ParseSessionToken(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Type assert the signing method to HMAC; reject others.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	// JWT numeric values are decoded as float64.
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidToken
	}
	return uint64(id), nil
}
