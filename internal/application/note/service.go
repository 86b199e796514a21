package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-notes-api/internal/domain"
	"github.com/go-notes-api/internal/pkg/id"
)

type Service interface {
	// Create persists a new note owned by ownerID.
	Create(ctx context.Context, ownerID, title, content string) (*domain.Note, error)
	// List returns all notes owned by ownerID, newest first.
	List(ctx context.Context, ownerID string) ([]domain.Note, error)
	// Delete removes a note after checking ownership. Fails with
	// domain.ErrForbidden when the note belongs to someone else.
	Delete(ctx context.Context, ownerID, noteID string) error
}

type noteStore interface {
	Put(ctx context.Context, n *domain.Note) error
	Get(ctx context.Context, noteID string) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	Delete(ctx context.Context, noteID string) error
}

type service struct {
	repo noteStore
}

func NewService(repo noteStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID, title, content string) (*domain.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrBadRequest)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required: %w", domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	n := &domain.Note{
		NoteID:    id.New(),
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	return s.repo.ListByUser(ctx, ownerID)
}

func (s *service) Delete(ctx context.Context, ownerID, noteID string) error {
	n, err := s.repo.Get(ctx, noteID)
	if err != nil {
		return err
	}
	// Ownership check must happen before deletion.
	if n.UserID != ownerID {
		return fmt.Errorf("not authorized: %w", domain.ErrForbidden)
	}
	return s.repo.Delete(ctx, noteID)
}
