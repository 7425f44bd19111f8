package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"trove/database"
	"trove/internal/api/cache"
	"trove/internal/api/handler"
	"trove/internal/api/middleware"
	"trove/internal/api/models"
	"trove/internal/api/repository"
	"trove/internal/api/service"
	"trove/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Redis is optional: without it the badge poll falls through to Postgres.
	badge, err := cache.NewNotifyCache(cfg.RedisURL, cfg.NotifyCacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, notify cache disabled", "error", err)
		badge = nil
	} else {
		defer badge.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	tagRepo := repository.NewTagRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	streamingRepo := repository.NewStreamingServiceRepository(db)
	bookRepo := repository.NewMediaRepo[models.Book](db, repository.BookRepoConfig())
	gameRepo := repository.NewMediaRepo[models.Game](db, repository.GameRepoConfig())
	showRepo := repository.NewMediaRepo[models.Show](db, repository.ShowRepoConfig())
	bookRecRepo := repository.NewRecommendationRepo[models.BookRecommendation](db, "Book", "Sender", "Recipient")
	gameRecRepo := repository.NewRecommendationRepo[models.GameRecommendation](db, "Game", "Sender", "Recipient")
	showRecRepo := repository.NewRecommendationRepo[models.ShowRecommendation](db, "Show", "Sender", "Recipient")

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo)
	tagService := service.NewTagService(tagRepo)
	authorService := service.NewAuthorService(authorRepo)
	lookupService := service.NewLookupService(platformRepo, streamingRepo)
	bookService := service.NewMediaService(bookRepo)
	gameService := service.NewMediaService(gameRepo)
	showService := service.NewMediaService(showRepo)
	bookRecService := service.NewBookRecommendationService(bookRecRepo, userRepo, badge)
	gameRecService := service.NewGameRecommendationService(gameRecRepo, userRepo, badge)
	showRecService := service.NewShowRecommendationService(showRecRepo, userRepo, badge)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tagHandler := handler.NewTagHandler(tagService)
	authorHandler := handler.NewAuthorHandler(authorService)
	lookupHandler := handler.NewLookupHandler(lookupService)
	bookHandler := handler.NewBookHandler(bookService)
	gameHandler := handler.NewGameHandler(gameService)
	showHandler := handler.NewShowHandler(showService)
	bookRecHandler := handler.NewRecommendationHandler(bookRecService)
	gameRecHandler := handler.NewRecommendationHandler(gameRecService)
	showRecHandler := handler.NewRecommendationHandler(showRecService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(limiter.Middleware())

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	// Public auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/auth/refresh", authHandler.RefreshToken)
	r.POST("/auth/revoke", authHandler.RevokeToken)

	// Everything else requires a bearer token
	authed := r.Group("/", middleware.AuthMiddleware(authService))
	bookHandler.RegisterRoutes(authed.Group("/books"))
	gameHandler.RegisterRoutes(authed.Group("/games"))
	showHandler.RegisterRoutes(authed.Group("/shows"))
	tagHandler.RegisterRoutes(authed.Group("/tags"))
	authorHandler.RegisterRoutes(authed.Group("/authors"))
	userHandler.RegisterRoutes(authed.Group("/users"))
	authed.GET("/platforms", lookupHandler.ListPlatforms)
	authed.GET("/streaming_services", lookupHandler.ListStreamingServices)
	bookRecHandler.RegisterRoutes(authed.Group("/book_recommendations"))
	gameRecHandler.RegisterRoutes(authed.Group("/game_recommendations"))
	showRecHandler.RegisterRoutes(authed.Group("/show_recommendations"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
