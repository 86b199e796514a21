package domain

import "time"

// Note is an owned content record. The owner reference is immutable after
// creation; there is no update or sharing path.
type Note struct {
	NoteID    string    `json:"id" dynamodbav:"note_id"`
	UserID    string    `json:"user" dynamodbav:"user_id"`
	Title     string    `json:"title" dynamodbav:"title"`
	Content   string    `json:"content" dynamodbav:"content"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
