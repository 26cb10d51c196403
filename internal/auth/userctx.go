package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/snapvault/snapvault-backend/internal/api/http"
	"github.com/snapvault/snapvault-backend/internal/users"
)

const (
	CtxExternalUID = "external_uid"
	CtxUserDBID    = "user_db_id"
)

// WithUser resolves the caller identity and loads the database user id
// into the request context. The identity comes from the verified token
// (set by VerifyFirebaseToken) or, in header mode, from the trusted
// X-User-Id header supplied by the upstream gateway. A request with no
// identity is rejected before any handler runs.
func WithUser(userRepo *users.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetString(CtxExternalUID))
		if uid == "" {
			uid = strings.TrimSpace(c.GetHeader("X-User-Id"))
		}
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httpapi.Error(httpapi.CodeUnauthorized, "no authenticated user"))
			return
		}

		id, err := userRepo.EnsureUser(c.Request.Context(), users.UpsertUser{
			ExternalUID: uid,
			Email:       c.GetHeader("X-User-Email"),
			DisplayName: c.GetHeader("X-User-Name"),
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httpapi.Error(httpapi.CodeInternal, "ensure user: "+err.Error()))
			return
		}

		c.Set(CtxExternalUID, uid)
		c.Set(CtxUserDBID, id)
		c.Next()
	}
}

// UserID returns the database user id set by WithUser, empty when the
// request carries no authenticated user.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserDBID))
}

// ExternalUID returns the external identity of the caller.
func ExternalUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxExternalUID))
}
