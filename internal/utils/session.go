// Package utils provides helper functions for password hashing and
// session token handling.
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is a signed HS256 JWT carried in the session cookie.  The
// token identifies the user (sub, name claims) and carries a random
// jti; only the SHA-256 hash of the jti is stored server side so
// logout can revoke the session.
type Session struct {
	Token string    // the serialized JWT string
	ID    string    // the jti claim, random per session
	Exp   time.Time // UTC expiration time
}

// ErrInvalidSession is returned when a session token fails signature,
// expiry or claim checks.
var ErrInvalidSession = errors.New("invalid session token")

// NewSession builds and signs a session JWT for a user.  ttlHours
// controls the cookie lifetime; the original site used one week.
func NewSession(secret string, userID uint64, username string, ttlHours int) (Session, error) {
	jti, err := randomHex(16)
	if err != nil {
		return Session{}, err
	}
	exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": username,
		"jti":  jti,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return Session{}, err
	}
	return Session{Token: signed, ID: jti, Exp: exp}, nil
}

// ParseSession validates a raw session JWT and returns the user ID,
// username and jti claims.  Any failure maps to ErrInvalidSession; the
// caller does not need to distinguish bad signatures from expiry.
func ParseSession(secret, raw string) (userID uint64, username, jti string, err error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, "", "", ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", "", ErrInvalidSession
	}
	switch sub := claims["sub"].(type) {
	case float64:
		userID = uint64(sub)
	case string:
		if n, perr := strconv.ParseUint(sub, 10, 64); perr == nil {
			userID = n
		}
	}
	if userID == 0 {
		return 0, "", "", ErrInvalidSession
	}
	username, _ = claims["name"].(string)
	jti, _ = claims["jti"].(string)
	if jti == "" {
		return 0, "", "", ErrInvalidSession
	}
	return userID, username, jti, nil
}

// HashSessionID returns the SHA-256 hash of a session jti as a hex
// string.  Only the hash is persisted in session_tokens.
func HashSessionID(jti string) string {
	sum := sha256.Sum256([]byte(jti))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
