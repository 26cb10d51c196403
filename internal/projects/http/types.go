package http

import "github.com/snapvault/snapvault-backend/internal/projects/repository"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	repo *repository.ProjectRepository
}

func New(repo *repository.ProjectRepository) *Handler {
	return &Handler{repo: repo}
}

type createReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	SourceDevice *string `json:"source_device"`
	SourceApp    *string `json:"source_app"`
}

type updateReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	SourceDevice *string `json:"source_device"`
	SourceApp    *string `json:"source_app"`
}

func (r updateReq) empty() bool {
	return r.Title == nil && r.Description == nil && r.SourceDevice == nil && r.SourceApp == nil
}
