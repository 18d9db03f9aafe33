package utils

import "github.com/gin-gonic/gin"

// Error writes the uniform error body used by every endpoint. Ownership
// failures are reported as 404 rather than 403 so resource existence is not
// leaked.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

// OK writes an affirmative `{ok: true}` body for mutation endpoints that
// have nothing else to return.
func OK(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"ok": true})
}
