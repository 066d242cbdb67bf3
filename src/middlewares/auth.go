package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"travelbook/src/config"
	"travelbook/src/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(ctx *gin.Context) string {
	header := strings.TrimSpace(ctx.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return header
}

// AdminAuth rejects missing or invalid tokens with 401 and non-admin tokens with 403.
func AdminAuth(ctx *gin.Context) {
	reqToken := bearerToken(ctx)
	if reqToken == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
		return
	}
	claims, err := utils.ParseJWT(config.JWTSecret(), reqToken)
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		if errors.Is(err, utils.ErrMissingSecret) {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if !claims.IsAdmin() {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	ctx.Set("email", claims.Email)
	ctx.Set("role", claims.Role)
	ctx.Next()
}
