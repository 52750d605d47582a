// Package demo es el login de demostración de la app: cualquier email/password no vacíos
// entran, y si la parte local del email contiene "admin" el usuario es admin.
// No da garantías de seguridad; los tokens son HS256 firmados con un secreto compartido.
package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pet-adoption/internal/ports/auth"
)

const DefaultTTL = 24 * time.Hour

var (
	ErrNotConfigured = errors.New("demo auth not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrInvalidToken  = errors.New("invalid token")
	ErrBadCredential = errors.New("email and password are required")
)

type claims struct {
	jwt.RegisteredClaims
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
}

// Tokens emite y verifica tokens. Implementa auth.AuthVerifier.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) configured() bool {
	return t != nil && len(t.secret) > 0
}

// Login valida credenciales de demo y devuelve token + claims.
func (t *Tokens) Login(email, password string) (string, auth.Claims, error) {
	if !t.configured() {
		return "", auth.Claims{}, ErrNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return "", auth.Claims{}, ErrBadCredential
	}

	c := auth.Claims{
		// id estable por email: el mismo usuario recupera sus datos entre logins.
		UserID: uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Email:  email,
		Role:   RoleFor(email),
	}
	tok, err := t.Issue(c)
	if err != nil {
		return "", auth.Claims{}, err
	}
	return tok, c, nil
}

// RoleFor: admin si la parte local del email contiene "admin".
func RoleFor(email string) auth.Role {
	local, _, _ := strings.Cut(strings.ToLower(email), "@")
	if strings.Contains(local, "admin") {
		return auth.RoleAdmin
	}
	return auth.RoleUser
}

func (t *Tokens) Issue(c auth.Claims) (string, error) {
	if !t.configured() {
		return "", ErrNotConfigured
	}
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Email: c.Email,
		Role:  c.Role,
	})
	s, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

func (t *Tokens) Verify(_ context.Context, token string) (auth.Claims, error) {
	if !t.configured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || strings.TrimSpace(c.Subject) == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	role := c.Role
	if role != auth.RoleAdmin {
		role = auth.RoleUser
	}
	return auth.Claims{UserID: c.Subject, Email: c.Email, Role: role}, nil
}
