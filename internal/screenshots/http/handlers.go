package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/snapvault/snapvault-backend/internal/api/http"
	"github.com/snapvault/snapvault-backend/internal/auth"
	"github.com/snapvault/snapvault-backend/internal/screenshots/domain"
	"github.com/snapvault/snapvault-backend/internal/screenshots/repository"
)

func (h *Handler) create(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.Error(httpapi.CodeUnauthorized, "no authenticated user"))
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.OriginalImageURL) == "" {
		c.JSON(http.StatusBadRequest, httpapi.Error(httpapi.CodeValidation, "original_image_url required"))
		return
	}

	s, err := h.repo.Create(c.Request.Context(), userID, repository.CreateInput{
		ProjectID:        req.ProjectID,
		OriginalImageURL: strings.TrimSpace(req.OriginalImageURL),
		Width:            req.Width,
		Height:           req.Height,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Error(httpapi.CodeNotFound, "project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, httpapi.Success(gin.H{"screenshot": s}))
}

func (h *Handler) list(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.Error(httpapi.CodeUnauthorized, "no authenticated user"))
		return
	}

	var projectID *string
	if v, ok := c.GetQuery("project_id"); ok && strings.TrimSpace(v) != "" {
		v = strings.TrimSpace(v)
		projectID = &v
	}

	items, err := h.repo.List(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Error(httpapi.CodeNotFound, "project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.Success(gin.H{"screenshots": items, "total": len(items)}))
}

func (h *Handler) update(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.Error(httpapi.CodeUnauthorized, "no authenticated user"))
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Error(httpapi.CodeValidation, "invalid body"))
		return
	}
	if req.empty() {
		c.JSON(http.StatusBadRequest, httpapi.Error(httpapi.CodeValidation, "at least one field required"))
		return
	}

	s, err := h.repo.Update(c.Request.Context(), userID, c.Param("id"), repository.UpdateInput{
		SetProjectID:   req.ProjectID.set,
		ProjectID:      req.ProjectID.value,
		EditedImageURL: req.EditedImageURL,
		Width:          req.Width,
		Height:         req.Height,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, httpapi.Error(httpapi.CodeNotFound, "screenshot not found"))
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, httpapi.Error(httpapi.CodeNotFound, "project not found"))
		default:
			c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, httpapi.Success(gin.H{"screenshot": s}))
}
