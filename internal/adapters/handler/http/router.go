package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/fitjournal-engine/docs"
	"github.com/comitanigiacomo/fitjournal-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

type RouterDependencies struct {
	AuthHandler    *AuthHandler
	WorkoutHandler *WorkoutHandler
	FoodHandler    *FoodHandler
	StatsHandler   *StatsHandler
	TokenService   middleware.TokenValidator
	Store          domain.DocumentStore
	// Redis is optional. Without it rate limiting is off and health reports redis as disabled.
	Redis redis.UniversalClient
	// RateLimit applies per IP on auth routes and per user on protected routes.
	RateLimit int
	// BarcodeRateLimit is the per-user budget for barcode lookups, which hit Open Food Facts.
	BarcodeRateLimit int
	RateWindow       time.Duration
	StartTime        time.Time
	AllowOrigins     []string
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	corsCfg := cors.Config{
		AllowMethods:  []string{"POST", "GET", "OPTIONS", "PUT", "DELETE"},
		AllowHeaders:  []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(deps.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.AllowOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if deps.Store == nil || deps.Store.Ping(c.Request.Context()) != nil {
			dbStatus = "unreachable"
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := http.StatusOK
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	var authLimit, userLimit, barcodeLimit []gin.HandlerFunc
	if deps.Redis != nil {
		limiter := middleware.NewRateLimiter(deps.Redis)
		authLimit = append(authLimit, limiter.Limit(middleware.RateLimitPolicy{
			Bucket: "auth", Limit: deps.RateLimit, Window: deps.RateWindow, Subject: middleware.ClientIPSubject,
		}))
		userLimit = append(userLimit, limiter.Limit(middleware.RateLimitPolicy{
			Bucket: "api", Limit: deps.RateLimit, Window: deps.RateWindow, Subject: middleware.UserSubject,
		}))
		barcodeLimit = append(barcodeLimit, limiter.Limit(middleware.RateLimitPolicy{
			Bucket: "barcode", Limit: deps.BarcodeRateLimit, Window: deps.RateWindow, Subject: middleware.UserSubject,
		}))
	}

	deps.AuthHandler.RegisterRoutes(apiV1.Group("", authLimit...))

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	protected.Use(userLimit...)
	{
		deps.WorkoutHandler.RegisterRoutes(protected)
		deps.FoodHandler.RegisterRoutes(protected, barcodeLimit...)
		deps.StatsHandler.RegisterRoutes(protected)
	}

	return router
}
