package main

import (
	"net/http"

	"travelbook/src/boot"
	"travelbook/src/models"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func bannerHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/banners", func(ctx *gin.Context) {
			var banners []models.Banner
			if err := svc.DB.
				WithContext(ctx).
				Where("active = ?", true).
				Order("position ASC").
				Find(&banners).
				Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": banners, "count": len(banners)})
		})
	return g
}

// bannerSlug appends a short suffix so repeated titles stay unique.
func bannerSlug(title string) string {
	return slug.Make(title) + "-" + uuid.NewString()[:8]
}

func adminBannerHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/banners", func(ctx *gin.Context) {
			var banners []models.Banner
			if err := svc.DB.WithContext(ctx).Order("position ASC").Find(&banners).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": banners, "count": len(banners)})
		}).
		POST("/banners", func(ctx *gin.Context) {
			var body types.CreateBannerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			banner := models.Banner{
				Title:    body.Title,
				Slug:     bannerSlug(body.Title),
				ImageURL: body.ImageURL,
				Link:     body.Link,
				Position: body.Position,
				Active:   body.Active == nil || *body.Active,
			}
			if err := svc.DB.WithContext(ctx).Create(&banner).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": banner})
		}).
		PUT("/banners/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateBannerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{
				"title":     body.Title,
				"image_url": body.ImageURL,
				"link":      body.Link,
				"position":  body.Position,
			}
			if body.Active != nil {
				updates["active"] = *body.Active
			}
			res := svc.DB.WithContext(ctx).Model(&models.Banner{ID: params.ID}).Updates(updates)
			if res.Error != nil {
				abortWithError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/banners/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res := svc.DB.WithContext(ctx).Where("id = ?", params.ID).Delete(&models.Banner{})
			if res.Error != nil {
				abortWithError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
