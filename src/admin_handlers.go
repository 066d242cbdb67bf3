package main

import (
	"log"
	"net/http"
	"strings"

	"travelbook/src/config"
	"travelbook/src/types"
	"travelbook/src/utils"

	"github.com/gin-gonic/gin"
)

func adminAuthHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/admin/login", func(ctx *gin.Context) {
			var body types.AdminLoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			adminEmail := config.AdminEmail()
			emailOK := adminEmail != "" && strings.EqualFold(body.Email, adminEmail)
			passwordOK := utils.CheckPassword(config.AdminPasswordHash(), body.Password)
			if !emailOK || !passwordOK {
				log.Printf("[Admin] Failed login for %s\n", body.Email)
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			token, err := utils.GenerateAdminJWT(config.JWTSecret(), adminEmail, config.ADMIN_TOKEN_TTL)
			if err != nil {
				log.Printf("[Admin] Error issuing token: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{
				"token":     token,
				"expiresIn": int(config.ADMIN_TOKEN_TTL.Seconds()),
			}})
		})
	return g
}
