package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound covers both a screenshot that does not exist and one
	// owned by another user.
	ErrNotFound = errors.New("screenshot not found")
	// ErrProjectNotFound is returned when a referenced project cannot
	// be resolved for the caller, whether absent or foreign-owned.
	ErrProjectNotFound = errors.New("project not found")
)

// Screenshot is one captured image plus a pointer to its latest edited
// rendering. Images live elsewhere; only their URLs are stored.
type Screenshot struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	ProjectID        *string   `json:"project_id"`
	OriginalImageURL string    `json:"original_image_url"`
	EditedImageURL   *string   `json:"edited_image_url"`
	Width            *int      `json:"width"`
	Height           *int      `json:"height"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
