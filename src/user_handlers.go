package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"travelbook/src/boot"
	"travelbook/src/models"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func userHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		POST("/users/sync", func(ctx *gin.Context) {
			var body types.SyncUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			now := time.Now()
			user := models.User{
				ID:         ctx.GetString("uid"),
				Email:      ctx.GetString("email"),
				Name:       body.Name,
				Phone:      body.Phone,
				LastActive: &now,
			}
			err := svc.DB.
				WithContext(ctx).
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					DoUpdates: clause.AssignmentColumns([]string{"email", "name", "phone", "last_active", "updated_at"}),
				}).
				Create(&user).
				Error
			if err != nil {
				log.Printf("[Users] Error syncing %s: %s\n", user.ID, err.Error())
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		})
	return g
}

func adminUserHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/users", func(ctx *gin.Context) {
			var users []models.User
			if err := svc.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
		}).
		PUT("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var user models.User
			err := svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				if err := tx.Where("id = ?", params.ID).First(&user).Error; err != nil {
					return err
				}
				updates := map[string]any{}
				if body.Name != "" {
					updates["name"] = body.Name
				}
				if body.Role != "" {
					updates["role"] = body.Role
				}
				if body.Disabled != nil {
					updates["disabled"] = *body.Disabled
				}
				if len(updates) > 0 {
					if err := tx.Model(&user).Updates(updates).Error; err != nil {
						return err
					}
				}
				if body.Role == "" && body.Disabled == nil {
					return nil
				}
				return svc.Users.Update(ctx, params.ID, body.Role, body.Disabled)
			})
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			err := svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				res := tx.Where("id = ?", params.ID).Delete(&models.User{})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return gorm.ErrRecordNotFound
				}
				return svc.Users.Delete(ctx, params.ID)
			})
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
