package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jobdock-dev/jobdock/internal/auth"
	"github.com/jobdock-dev/jobdock/internal/types"
)

// AuthMiddleware gates protected routes. It resolves the bearer token to the
// email it embeds and stores it in the request context; handlers look the
// user row up themselves. Verified tokens are not cached across requests.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing..!"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[1] == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized Access Token..!"})
			return
		}

		email, err := auth.VerifyJWT(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid Token"})
			return
		}

		ctx.Set(types.ContextEmailKey, email)
		ctx.Next()
	}
}
