// Package note defines the note domain model.
package note

import (
	"errors"
	"time"
)

// Note is a tenant-scoped note owned by a single user. TenantID is
// denormalized from the owner at creation and immutable afterwards.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRequest is the input for creating a note. Owner and tenant are
// always taken from the authenticated identity, never from the body.
type CreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks that the CreateRequest has a title.
func (r *CreateRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// UpdateRequest is the input for updating a note. Nil fields are left
// unchanged; at least one field must be present.
type UpdateRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Validate checks that at least one field is set.
func (r *UpdateRequest) Validate() error {
	if r.Title == nil && r.Content == nil {
		return errors.New("at least title or content must be provided")
	}
	if r.Title != nil && *r.Title == "" {
		return errors.New("title must not be empty")
	}
	return nil
}
