package google

import (
	"context"
	"fmt"

	"github.com/go-notes-api/internal/domain"
	"google.golang.org/api/idtoken"
)

// Payload holds the verified claims extracted from a Google ID token.
type Payload struct {
	Sub   string
	Email string
	Name  string
}

// TokenVerifier verifies a federated ID token and extracts its identity claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Payload, error)
}

// Verifier verifies Google ID tokens against a specific client ID.
type Verifier struct {
	clientID string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// Verify validates the Google ID token and returns the extracted payload.
// A token that fails validation is a malformed credential in the request
// body, not a missing session, so it wraps domain.ErrBadRequest.
func (v *Verifier) Verify(ctx context.Context, token string) (*Payload, error) {
	p, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %w", domain.ErrBadRequest)
	}
	email, _ := p.Claims["email"].(string)
	name, _ := p.Claims["name"].(string)
	return &Payload{
		Sub:   p.Subject,
		Email: email,
		Name:  name,
	}, nil
}
