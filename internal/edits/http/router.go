package http

import "github.com/gin-gonic/gin"

// Register attaches the edit-trail routes under the screenshots group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/:id/edits", h.create)
	rg.GET("/:id/edits", h.list)
}
