package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TheOutlierDev/UppbeatApi/config"
	"github.com/TheOutlierDev/UppbeatApi/internal/auth"
	"github.com/TheOutlierDev/UppbeatApi/internal/health"
	"github.com/TheOutlierDev/UppbeatApi/internal/infrastructure/database"
	"github.com/TheOutlierDev/UppbeatApi/internal/middleware"
	"github.com/TheOutlierDev/UppbeatApi/internal/track"
	"github.com/TheOutlierDev/UppbeatApi/internal/user"
	"github.com/TheOutlierDev/UppbeatApi/pkg/logger"
)

func main() {
	// 0. Load Config
	env := os.Getenv("APP_ENV")
	cfg, err := config.Load(env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.New(logger.Config{
		Mode:       cfg.Server.Mode,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer zlog.Sync()

	// 1. Setup
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Store
	db, err := database.NewPostgresDB(*cfg)
	if err != nil {
		zlog.Fatal("failed to connect to postgres", zap.Error(err))
	}
	if err := database.Migrate(*cfg, cfg.MigrationsDir); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}
	zlog.Info("connected to postgres", zap.String("host", cfg.DB.Host), zap.String("db", cfg.DB.Name))

	// 3. Services & Middleware
	tokenService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	if err != nil {
		zlog.Fatal("failed to build token service", zap.Error(err))
	}
	userService := user.NewStoreService(db)
	trackRepo := track.NewStoreRepository(db)

	authMiddleware := middleware.AuthMiddleware(tokenService)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)

	// Dev UX: Print a valid token for testing
	if cfg.Server.Mode == "debug" {
		devToken, _ := tokenService.GenerateToken("dev_artist", user.RoleArtist)
		zlog.Info("dev access token", zap.String("token", devToken))
	}

	// 4. Handlers
	healthHandler := health.NewHealthHandler()
	authHandler := auth.NewHandler(tokenService, userService, zlog)
	trackHandler := track.NewHandler(trackRepo, zlog)

	// 5. Routes
	r := gin.Default()
	r.Use(limiter.Middleware())

	// Public
	r.GET("/health", healthHandler.Check)
	r.POST("/auth/token", authHandler.Token)

	api := r.Group("/api/track")
	{
		api.GET("", trackHandler.GetTracks)
		api.GET("/:id", trackHandler.GetTrackByID)

		protected := api.Group("")
		protected.Use(authMiddleware)
		{
			protected.POST("", middleware.RequireRoles(user.RoleArtist), trackHandler.AddTrack)
			protected.PUT("/:id", middleware.RequireRoles(user.RoleArtist), trackHandler.UpdateTrack)
			protected.DELETE("/:id", middleware.RequireRoles(user.RoleArtist), trackHandler.DeleteTrack)
			protected.GET("/:id/download", middleware.RequireRoles(user.RoleRegular, user.RoleArtist), trackHandler.DownloadTrack)
		}
	}

	// 6. Run
	addr := ":" + cfg.Server.Port
	zlog.Info("starting uppbeat api", zap.String("addr", addr), zap.String("env", env))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("failed to run server", zap.Error(err))
	}
}
