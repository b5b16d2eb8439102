// Package token mints and parses session tokens for the auth flow.
//
// Tokens are signed HS256 JWTs so they are verifiable in principle, but no
// endpoint in this API re-checks them after login; downstream authorization
// is out of scope here.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config holds signing parameters.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Claims is the payload carried by a session token.
type Claims struct {
	Email     string
	Role      string
	ExpiresAt time.Time
}

// ErrInvalidToken wraps parsing/validation failures.
var ErrInvalidToken = errors.New("invalid session token")

// Issuer mints session tokens.
type Issuer struct {
	cfg Config
	now func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	return &Issuer{cfg: cfg, now: time.Now}
}

// NewIssuerAt allows tests to pin the clock.
func NewIssuerAt(cfg Config, now func() time.Time) *Issuer {
	return &Issuer{cfg: cfg, now: now}
}

// Mint signs a session token for the given account email and role.
func (i *Issuer) Mint(email, role string) (string, error) {
	now := i.now().UTC()
	claims := jwt.MapClaims{
		"jti":  uuid.NewString(),
		"iss":  i.cfg.Issuer,
		"sub":  email,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(i.cfg.TTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.cfg.Secret))
}

// Parse validates a session token and returns its claims.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(i.cfg.Secret), nil
	}, jwt.WithIssuer(i.cfg.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}
	// NumericDate carries a local-zone time; timestamps are UTC everywhere.
	return &Claims{Email: sub, Role: role, ExpiresAt: exp.Time.UTC()}, nil
}
