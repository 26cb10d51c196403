package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	httpapi "github.com/snapvault/snapvault-backend/internal/api/http"
	appauth "github.com/snapvault/snapvault-backend/internal/auth"
)

// VerifyFirebaseToken validates Firebase ID tokens and stores the
// caller's uid for WithUser to pick up.
func VerifyFirebaseToken(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httpapi.Error(httpapi.CodeUnauthorized, "missing authorization token"))
			return
		}

		decodedToken, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httpapi.Error(httpapi.CodeUnauthorized, "invalid token"))
			return
		}

		c.Set(appauth.CtxExternalUID, decodedToken.UID)

		if email, ok := decodedToken.Claims["email"].(string); ok {
			c.Set("email", email)
		}

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
