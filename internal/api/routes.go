package api

import (
	"net/http"

	"hermesoftware/byklab-api/internal/config"
	"hermesoftware/byklab-api/internal/metrics"
	"hermesoftware/byklab-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Services bundles what the handlers depend on.
type Services struct {
	Auth          service.AuthService
	Subscriptions service.SubscriptionService
	Exercises     service.ExerciseService
	Blog          service.BlogService
	Dashboard     service.DashboardService
	Seed          service.SeedService
	Store         Pinger
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(cfg config.Config, services Services, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(log), RequestLogger(log))
	if cfg.Metrics.Enabled {
		router.Use(metrics.Middleware())
	}
	router.Use(CORSMiddleware(cfg.CORS.AllowedOrigins()))
	if cfg.RateLimit.RPS > 0 {
		router.Use(NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log).Handler())
	}

	SetupRoutes(router, cfg, services, log)
	return router
}

func SetupRoutes(router *gin.Engine, cfg config.Config, services Services, log logrus.FieldLogger) {
	authHandler := NewAuthHandler(services.Auth, log)
	subscriptionHandler := NewSubscriptionHandler(services.Subscriptions, services.Dashboard)
	exerciseHandler := NewExerciseHandler(services.Exercises, log)
	blogHandler := NewBlogHandler(services.Blog, log)
	seedHandler := NewSeedHandler(services.Seed, log)
	healthHandler := NewHealthHandler(services.Store, log)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", healthHandler.Health)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
		}

		subscriptionGroup := apiGroup.Group("/subscriptions")
		{
			subscriptionGroup.GET("/plans", subscriptionHandler.ListPlans)
			subscriptionGroup.POST("/activate", subscriptionHandler.Activate)
		}

		exerciseGroup := apiGroup.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/by-muscle/:muscle_group", exerciseHandler.ListByMuscleGroup)
		}

		blogGroup := apiGroup.Group("/blog")
		{
			blogGroup.GET("/posts", blogHandler.ListPosts)
			blogGroup.GET("/post/:post_id", blogHandler.GetPost)
		}

		apiGroup.GET("/dashboard/stats", subscriptionHandler.DashboardStats)

		apiGroup.POST("/seed-data", seedHandler.Seed)
	}
}
