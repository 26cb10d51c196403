package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/snapvault/snapvault-backend/internal/api/http"
	"github.com/snapvault/snapvault-backend/internal/auth"
	"github.com/snapvault/snapvault-backend/internal/edits/domain"
	"github.com/snapvault/snapvault-backend/internal/edits/repository"
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

	e, err := h.repo.Create(c.Request.Context(), userID, repository.CreateInput{
		ScreenshotID:   c.Param("id"),
		EditType:       req.EditType,
		Operations:     req.Operations,
		ResultImageURL: req.ResultImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrScreenshotNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Error(httpapi.CodeNotFound, "screenshot not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		return
	}

	h.publisher.EditCreated(c.Request.Context(), e.ScreenshotID, e)

	c.JSON(http.StatusCreated, httpapi.Success(gin.H{"edit": e}))
}

func (h *Handler) list(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.Error(httpapi.CodeUnauthorized, "no authenticated user"))
		return
	}

	items, err := h.repo.ListByScreenshot(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrScreenshotNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Error(httpapi.CodeNotFound, "screenshot not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.Success(gin.H{"edits": items, "total": len(items)}))
}
