package http

import (
	"encoding/json"

	"github.com/snapvault/snapvault-backend/internal/edits/repository"
	"github.com/snapvault/snapvault-backend/internal/events"
)

// Handler bundles the dependencies for edit-trail HTTP endpoints.
type Handler struct {
	repo      *repository.EditRepository
	publisher *events.Publisher
}

func New(repo *repository.EditRepository, publisher *events.Publisher) *Handler {
	return &Handler{repo: repo, publisher: publisher}
}

type createReq struct {
	EditType       *string         `json:"edit_type"`
	Operations     json.RawMessage `json:"operations_json"`
	ResultImageURL *string         `json:"result_image_url"`
}
