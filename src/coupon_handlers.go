package main

import (
	"net/http"
	"strings"

	"travelbook/src/boot"
	"travelbook/src/fare"
	"travelbook/src/models"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
)

type couponValidateQuery struct {
	Code   string            `form:"code" binding:"required"`
	Type   types.BookingKind `form:"type" binding:"required,oneof=flight bus"`
	Amount float64           `form:"amount" binding:"gte=0"`
}

func couponHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/coupons/validate", func(ctx *gin.Context) {
			var query couponValidateQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			coupon, err := svc.Catalog.Coupon(ctx, query.Code)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			discount, err := fare.Discount(*coupon.Terms(), query.Type, query.Amount)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"coupon": coupon, "discount": discount}})
		})
	return g
}

func couponFromBody(body types.CreateCouponRequestBody) models.Coupon {
	active := true
	if body.Active != nil {
		active = *body.Active
	}
	return models.Coupon{
		Code:          strings.ToUpper(body.Code),
		DiscountType:  body.DiscountType,
		DiscountValue: body.DiscountValue,
		ApplicableTo:  body.ApplicableTo,
		Active:        active,
		Description:   body.Description,
	}
}

func adminCouponHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/coupons", func(ctx *gin.Context) {
			var coupons []models.Coupon
			if err := svc.DB.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": coupons, "count": len(coupons)})
		}).
		POST("/coupons", func(ctx *gin.Context) {
			var body types.CreateCouponRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if body.DiscountType == types.DISCOUNT_PERCENTAGE && body.DiscountValue > 100 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "percentage discount cannot exceed 100"})
				return
			}
			coupon := couponFromBody(body)
			if err := svc.DB.WithContext(ctx).Create(&coupon).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": coupon})
		}).
		PUT("/coupons/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateCouponRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if body.DiscountType == types.DISCOUNT_PERCENTAGE && body.DiscountValue > 100 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "percentage discount cannot exceed 100"})
				return
			}
			coupon := couponFromBody(body)
			coupon.ID = params.ID
			res := svc.DB.
				WithContext(ctx).
				Model(&models.Coupon{ID: params.ID}).
				Select("code", "discount_type", "discount_value", "applicable_to", "active", "description").
				Updates(&coupon)
			if res.Error != nil {
				abortWithError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "coupon not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": coupon})
		}).
		DELETE("/coupons/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res := svc.DB.WithContext(ctx).Where("id = ?", params.ID).Delete(&models.Coupon{})
			if res.Error != nil {
				abortWithError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "coupon not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
