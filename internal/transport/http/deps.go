package http

import (
	"context"

	"github.com/go-notes-api/internal/domain"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	SetOTP(ctx context.Context, userID, otpHash string, expiresAt int64) error
	ClearOTP(ctx context.Context, userID string) error
}

// NoteRepository is the minimal interface the router requires from a note store.
type NoteRepository interface {
	Put(ctx context.Context, n *domain.Note) error
	Get(ctx context.Context, noteID string) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	Delete(ctx context.Context, noteID string) error
}
