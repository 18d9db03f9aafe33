package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gogumaworld/goguma/utils"
)

const (
	// SessionCookie is the name of the cookie carrying the session token.
	SessionCookie = "goguma_session"
	// ContextUserIDKey is the key used to store the authenticated user ID in
	// Gin context.
	ContextUserIDKey = "user_id"
	// ContextUserNameKey stores the user's display name.
	ContextUserNameKey = "user_name"
	// ContextClaimsKey stores the parsed session claims (for logout).
	ContextClaimsKey = "session_claims"
)

// SessionLoader resolves the session cookie when present and stores the
// caller's identity in the request context. It never aborts; endpoints that
// require a session stack AuthRequired on top.
func SessionLoader() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookie)
		if err != nil || token == "" {
			ctx.Next()
			return
		}

		claims, err := utils.ParseSessionToken(token)
		if err != nil || utils.IsSessionRevoked(claims.ID) {
			ctx.Next()
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextUserNameKey, claims.UserName)
		ctx.Set(ContextClaimsKey, claims)
		ctx.Next()
	}
}

// AuthRequired rejects requests that did not present a valid session cookie.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, exists := ctx.Get(ContextUserIDKey); !exists {
			utils.Error(ctx, http.StatusUnauthorized, "login required")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
