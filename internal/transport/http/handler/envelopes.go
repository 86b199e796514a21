package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-notes-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SafeUser is the user projection returned to clients. OTP and federation
// fields never leave the server.
type SafeUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthEnvelope wraps successful authentication responses.
type AuthEnvelope struct {
	Token string    `json:"token"`
	User  *SafeUser `json:"user"`
}

func toSafeUser(u *domain.User) *SafeUser {
	if u == nil {
		return nil
	}
	return &SafeUser{ID: u.UserID, Name: u.Name, Email: u.Email}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// writeServiceError maps a domain sentinel error to its HTTP status.
// Duplicate signup deliberately maps to 400 and a foreign-owner delete to
// 401, matching the API contract clients already depend on. Unexpected
// errors become an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "an unexpected server error occurred")
	}
}
