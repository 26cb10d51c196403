package uploads

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/snapvault/snapvault-backend/internal/api/http"
	"github.com/snapvault/snapvault-backend/internal/auth"
)

// Handler exposes presigned upload tickets. A nil presigner keeps the
// route mounted but answers 503.
type Handler struct {
	presigner *Presigner
}

func NewHandler(presigner *Presigner) *Handler {
	return &Handler{presigner: presigner}
}

type presignReq struct {
	ContentType string `json:"content_type"`
}

func (h *Handler) presign(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.Error(httpapi.CodeUnauthorized, "no authenticated user"))
		return
	}

	if h.presigner == nil {
		c.JSON(http.StatusServiceUnavailable, httpapi.Error(httpapi.CodeUnavailable, "uploads are not configured"))
		return
	}

	var req presignReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ContentType) == "" {
		c.JSON(http.StatusBadRequest, httpapi.Error(httpapi.CodeValidation, "content_type required"))
		return
	}

	ticket, err := h.presigner.PresignUpload(c.Request.Context(), userID, strings.TrimSpace(req.ContentType))
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Error(httpapi.CodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, httpapi.Success(gin.H{"upload": ticket}))
}

// Register attaches the upload routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.presign)
}
