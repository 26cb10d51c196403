package http

import "github.com/gin-gonic/gin"

// Machine-readable error codes surfaced to callers.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeInternal     = "INTERNAL"
	CodeUnavailable  = "UNAVAILABLE"
)

// Success wraps a payload in the uniform response envelope.
func Success(data gin.H) gin.H {
	return gin.H{"success": true, "data": data}
}

// Error builds the error envelope with a machine-readable code and a
// human message.
func Error(code, message string) gin.H {
	return gin.H{"success": false, "error": gin.H{"code": code, "message": message}}
}
