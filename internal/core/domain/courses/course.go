package courses

import (
	"time"

	"go-courses-api/internal/core/domain"
	"go-courses-api/internal/core/domain/account"
)

// Course is a record owned by exactly one account. UserID is always the
// creator's id; it never comes from a request body and never changes.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   string    `json:"estimatedTime,omitzero"`
	MaterialsNeeded string    `json:"materialsNeeded,omitzero"`
	UserID          string    `json:"userId"`
	CreatedAt       time.Time `json:"createdAt,omitzero"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`

	// Owner holds the owning account's public fields when the course was
	// read with an owner join. It is zero on writes.
	Owner account.User `json:"owner,omitzero"`
}

// Validate checks the caller-editable fields and reports all failures
// together.
func (c Course) Validate() error {
	var msgs []string
	if c.Title == "" {
		msgs = append(msgs, "Title is required")
	}
	if c.Description == "" {
		msgs = append(msgs, "Description is required")
	}
	return domain.NewValidationError(msgs)
}

// Update describes a partial mutation. A nil field is left untouched, so a
// body carrying only a title does not clobber the description.
type Update struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Apply merges the update into the course without touching ownership or the
// optional fields.
func (c Course) Apply(u Update) Course {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	return c
}
