package domain

import (
	"errors"
	"time"
)

// ErrNotFound covers both a project that does not exist and one owned
// by another user; callers cannot tell the two apart.
var ErrNotFound = errors.New("project not found")

// Project groups the screenshots captured for one bug, report, or
// session. It is intentionally storage-agnostic and used across
// repository and HTTP layers.
type Project struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	SourceDevice *string   `json:"source_device"`
	SourceApp    *string   `json:"source_app"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
