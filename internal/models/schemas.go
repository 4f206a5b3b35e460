package models

import (
	"time"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TaskCreateRequest carries a user_id field for wire compatibility, but
// the task service always replaces it with the authenticated principal.
type TaskCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
	UserID      uint       `json:"user_id"`
}

// TaskUpdateRequest has patch semantics: nil fields are left untouched.
type TaskUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	IsCompleted *bool      `json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
}

// Empty reports whether the patch touches no fields.
func (r TaskUpdateRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.IsCompleted == nil && r.DueDate == nil
}
