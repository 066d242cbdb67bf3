package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"
	"time"

	"travelbook/src/boot"
	"travelbook/src/config"
	"travelbook/src/lib"
	"travelbook/src/middlewares"
	"travelbook/src/types"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api"
)

var couponCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,32}$`)

var couponCodeValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	code, ok := fl.Field().Interface().(string)
	return ok && couponCodePattern.MatchString(code)
}

var travelDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(types.DATE_FORMAT, date)
	return err == nil
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("couponcode", couponCodeValidatorFunc)
		v.RegisterValidation("traveldate", travelDateValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		on, err := strconv.ParseBool(os.Getenv("MAINTENANCE_MODE"))
		if err == nil && on {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
	})
	return g
}

func corsMiddleware() gin.HandlerFunc {
	if config.IsLocal() {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
	cc.AllowOrigins = config.AllowedOrigins()
	cc.AllowCredentials = true
	return cors.New(cc)
}

// registerRoutes mounts every group. userAuth is the Firebase ID token check.
func registerRoutes(router *gin.Engine, svc *boot.Services, userAuth gin.HandlerFunc) {
	api := router.Group(apiPrefix)
	flightHandlers(api, svc)
	busHandlers(api, svc)
	bannerHandlers(api, svc)
	couponHandlers(api, svc)
	fareHandlers(api, svc)
	otpHandlers(api, svc)
	adminAuthHandlers(api)

	authorized := router.Group(apiPrefix)
	authorized.Use(userAuth)
	{
		userHandlers(authorized, svc)
		bookingHandlers(authorized, svc)
		ticketHandlers(authorized, svc)
		confirmationHandlers(authorized, svc)
	}

	notifications := router.Group(apiPrefix)
	notifications.Use(middlewares.AdminAuth)
	notificationHandlers(notifications, svc)

	admin := router.Group(path.Join(apiPrefix, "admin"))
	admin.Use(middlewares.AdminAuth)
	{
		adminFlightHandlers(admin, svc)
		adminBusHandlers(admin, svc)
		adminCouponHandlers(admin, svc)
		adminBannerHandlers(admin, svc)
		adminUserHandlers(admin, svc)
		adminBookingHandlers(admin, svc)
	}
}

func initLogger() {
	cwd, _ := os.Getwd()
	logsDir := path.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		log.Printf("Could not create logs directory: %s\n", err.Error())
		return
	}
	gin.ForceConsoleColor()

	f, err := os.Create(path.Join(logsDir, "api.log"))
	if err == nil {
		gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	}
	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   path.Join(logsDir, "server.log"),
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}))
}

func main() {
	if config.IsLocal() {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("No .env loaded: %s\n", err.Error())
		}
	}
	initLogger()
	registerValidators()

	svc := boot.Init()
	defer lib.CloseFirestore()

	router := setupRouter()
	router.Use(corsMiddleware())
	router = maintenanceModeMiddleware(router)
	registerRoutes(router, svc, middlewares.VerifyIdToken)

	addr := ":" + config.Port()
	log.Printf("Listening on %s (%s)\n", addr, config.APIEnv())
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %s\n", err.Error())
	}
}
