package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the minimal identity a login token carries. There is no expiry
// claim: tokens stay valid until the signing secret rotates.
type Claims struct {
	UserID   string `json:"uid"`
	Fullname string `json:"fullname"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Manager issues and validates login tokens with a process-wide secret.
type Manager struct {
	secret []byte
}

func NewManager(secret []byte) *Manager {
	return &Manager{secret: secret}
}

// GetLoginToken encodes the identity claims into an opaque bearer string.
func (m *Manager) GetLoginToken(userID, fullname string, isAdmin bool) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Fullname: fullname,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate returns the claims carried by a login token, or nil for any
// tampered, foreign-key or otherwise malformed input. It never panics and
// never returns an error: an unreadable token means "no identity".
func (m *Manager) Validate(raw string) *Claims {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return nil
	}
	return claims
}
