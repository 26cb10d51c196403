package http

import (
	"encoding/json"

	"github.com/snapvault/snapvault-backend/internal/screenshots/repository"
)

// Handler bundles the dependencies for screenshot HTTP endpoints.
type Handler struct {
	repo *repository.ScreenshotRepository
}

func New(repo *repository.ScreenshotRepository) *Handler {
	return &Handler{repo: repo}
}

type createReq struct {
	ProjectID        *string `json:"project_id"`
	OriginalImageURL string  `json:"original_image_url"`
	Width            *int    `json:"width"`
	Height           *int    `json:"height"`
}

// nullableString tracks presence so a PATCH can tell "field absent"
// apart from an explicit null.
type nullableString struct {
	set   bool
	value *string
}

func (n *nullableString) UnmarshalJSON(b []byte) error {
	n.set = true
	if string(b) == "null" {
		n.value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.value = &s
	return nil
}

type updateReq struct {
	ProjectID      nullableString `json:"project_id"`
	EditedImageURL *string        `json:"edited_image_url"`
	Width          *int           `json:"width"`
	Height         *int           `json:"height"`
}

func (r updateReq) empty() bool {
	return !r.ProjectID.set && r.EditedImageURL == nil && r.Width == nil && r.Height == nil
}
