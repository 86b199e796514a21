package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-notes-api/internal/domain"
	jwtinfra "github.com/go-notes-api/internal/infrastructure/jwt"
	"github.com/go-notes-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockNoteSvc struct{ mock.Mock }

func (m *mockNoteSvc) Create(ctx context.Context, ownerID, title, content string) (*domain.Note, error) {
	args := m.Called(ctx, ownerID, title, content)
	if n, _ := args.Get(0).(*domain.Note); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteSvc) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *mockNoteSvc) Delete(ctx context.Context, ownerID, noteID string) error {
	return m.Called(ctx, ownerID, noteID).Error(0)
}

// --- helpers ---

// withClaims attaches authenticated-user claims the way the auth middleware does.
func withClaims(req *http.Request, userID string) *http.Request {
	claims := &jwtinfra.Claims{UserID: userID, Name: "Jonas", Email: "a@x.com"}
	return req.WithContext(context.WithValue(req.Context(), middleware.ClaimsKey, claims))
}

func notesRouter(h *NoteHandler) chi.Router {
	r := chi.NewRouter()
	r.Post("/api/notes", h.Create)
	r.Get("/api/notes", h.List)
	r.Delete("/api/notes/{id}", h.Delete)
	return r
}

// --- Create ---

func TestCreateNote_NoClaims_Returns401(t *testing.T) {
	h := NewNoteHandler(&mockNoteSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader([]byte(`{"title":"t","content":"c"}`)))
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateNote_EmptyTitle_Returns400(t *testing.T) {
	svc := &mockNoteSvc{}

	h := NewNoteHandler(svc)
	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader([]byte(`{"title":"","content":"c"}`))), "u1")
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateNote_WhitespaceTitle_Returns400(t *testing.T) {
	svc := &mockNoteSvc{}
	svc.On("Create", mock.Anything, "u1", "  ", "c").Return(nil, domain.ErrBadRequest)

	h := NewNoteHandler(svc)
	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader([]byte(`{"title":"  ","content":"c"}`))), "u1")
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateNote_HappyPath_Returns201(t *testing.T) {
	svc := &mockNoteSvc{}
	now := time.Now().UTC()
	n := &domain.Note{NoteID: "n1", UserID: "u1", Title: "Groceries", Content: "milk", CreatedAt: now, UpdatedAt: now}
	svc.On("Create", mock.Anything, "u1", "Groceries", "milk").Return(n, nil)

	h := NewNoteHandler(svc)
	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader([]byte(`{"title":"Groceries","content":"milk"}`))), "u1")
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var got domain.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "n1", got.NoteID)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, "milk", got.Content)
}

// --- List ---

func TestListNotes_ReturnsOwnerNotes(t *testing.T) {
	svc := &mockNoteSvc{}
	notes := []domain.Note{
		{NoteID: "n2", UserID: "u1", Title: "b"},
		{NoteID: "n1", UserID: "u1", Title: "a"},
	}
	svc.On("List", mock.Anything, "u1").Return(notes, nil)

	h := NewNoteHandler(svc)
	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/notes", nil), "u1")
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []domain.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "n2", got[0].NoteID)
}

// --- Delete ---

func TestDeleteNote_NotFound_Returns404(t *testing.T) {
	svc := &mockNoteSvc{}
	svc.On("Delete", mock.Anything, "u1", "missing").Return(domain.ErrNotFound)

	h := NewNoteHandler(svc)
	req := withClaims(httptest.NewRequest(http.MethodDelete, "/api/notes/missing", nil), "u1")
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteNote_ForeignOwner_Returns401(t *testing.T) {
	svc := &mockNoteSvc{}
	svc.On("Delete", mock.Anything, "u1", "n1").Return(domain.ErrForbidden)

	h := NewNoteHandler(svc)
	req := withClaims(httptest.NewRequest(http.MethodDelete, "/api/notes/n1", nil), "u1")
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDeleteNote_HappyPath(t *testing.T) {
	svc := &mockNoteSvc{}
	svc.On("Delete", mock.Anything, "u1", "n1").Return(nil)

	h := NewNoteHandler(svc)
	req := withClaims(httptest.NewRequest(http.MethodDelete, "/api/notes/n1", nil), "u1")
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
