package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/snapvault/snapvault-backend/internal/api/http"
	"github.com/snapvault/snapvault-backend/internal/auth"
	"github.com/snapvault/snapvault-backend/internal/projects/domain"
	"github.com/snapvault/snapvault-backend/internal/projects/repository"
)

func (h *Handler) create(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.Error(httpapi.CodeUnauthorized, "no authenticated user"))
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Error(httpapi.CodeValidation, "invalid body"))
		return
	}

	p, err := h.repo.Create(c.Request.Context(), userID, repository.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		SourceDevice: req.SourceDevice,
		SourceApp:    req.SourceApp,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, httpapi.Success(gin.H{"project": p}))
}

func (h *Handler) list(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.Error(httpapi.CodeUnauthorized, "no authenticated user"))
		return
	}

	items, err := h.repo.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.Success(gin.H{"projects": items, "total": len(items)}))
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

	p, err := h.repo.Update(c.Request.Context(), userID, c.Param("id"), repository.UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		SourceDevice: req.SourceDevice,
		SourceApp:    req.SourceApp,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Error(httpapi.CodeNotFound, "project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.Success(gin.H{"project": p}))
}
