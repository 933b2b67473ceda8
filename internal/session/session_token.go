package session

import (
	"errors"
	"time"

	sessionerrors "elms-portal/internal/session/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies the signed cookie that carries a session id.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func NewSessionID() string {
	return uuid.NewString()
}

func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

func (t *Tokens) Issue(sid string) (string, error) {
	now := t.now()
	claims := Claims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", sessionerrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

// Parse verifies raw and returns the session id it carries.
func (t *Tokens) Parse(raw string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, sessionerrors.ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", sessionerrors.ErrTokenExpired
		}
		return "", sessionerrors.ErrInvalidToken
	}
	if !token.Valid || claims.SID == "" {
		return "", sessionerrors.ErrInvalidToken
	}
	return claims.SID, nil
}
