package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-notes-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes per authentication path.
const (
	SignupExpiry       = 72 * time.Hour  // signup and Google logins
	LoginExpiry        = 24 * time.Hour  // plain login
	KeepLoggedInExpiry = 720 * time.Hour // login with keepLoggedIn
)

// Claims holds the JWT payload fields.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 JWTs with a shared secret.
// Tokens are stateless: there is no server-side session table and no
// revocation, so a token stays valid until its natural expiry.
type Provider struct {
	secret []byte
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret not configured")
	}
	return &Provider{secret: []byte(cfg.JWTSecret)}, nil
}

func (p *Provider) Sign(userID, name, email string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
