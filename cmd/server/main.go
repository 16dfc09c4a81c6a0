package main

import (
	"log"
	"os"
	"strconv"

	"ecocycle/config"
	"ecocycle/controllers"
	"ecocycle/db"
	"ecocycle/internal/rank"
	"ecocycle/middlewares"
	"ecocycle/routes"
	"ecocycle/services"
	"ecocycle/utils"
	"ecocycle/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.prod.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)
	controllers.InitAuthService(cfg.Cognito.AppClientId, cfg.Cognito.AppClientSecret, cfg.Cognito.Region)

	if err := services.InitVisionService(cfg.Gemini.ApiKey); err != nil {
		log.Fatalf("Failed to init vision service: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// The redis leaderboard mirror is optional; without it rank queries fall
	// back to the bounded mongo scan.
	if cfg.Redis.Addr != "" {
		if err := rank.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			log.Printf("Redis unavailable, leaderboard cache disabled: %v", err)
		} else {
			log.Println("Connected to Redis")
		}
	}

	utils.PopulateTestPlayers()

	router := setupRouter()
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/verifyEmail", routes.VerifyEmailRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.POST("/forgotPassword", routes.ForgotPasswordRouteHandler)
	router.POST("/confirmForgotPassword", routes.VerifyForgotPasswordRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/scan/classify", routes.ClassifyScanRouteHandler)
		auth.POST("/scan/evaluate", routes.EvaluateScanRouteHandler)
		auth.GET("/scan/history", routes.GetScanHistoryRouteHandler)
		auth.POST("/action/confirm", routes.ConfirmActionRouteHandler)

		auth.GET("/player/profile", routes.GetProfileRouteHandler)
		auth.GET("/player/achievements", routes.GetAchievementsRouteHandler)
		auth.GET("/player/rank", routes.GetPlayerRankRouteHandler)

		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
		auth.GET("/campus/stats", routes.GetCampusStatsRouteHandler)
	}

	// WebSocket endpoint for live progression updates. The handler validates
	// the token itself: browsers cannot set headers on upgrade requests, so
	// it also accepts ?token=.
	router.GET("/ws/gamification", websocket.GamificationWebSocketHandler)

	return router
}
