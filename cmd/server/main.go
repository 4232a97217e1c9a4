package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cryptopet/internal/chain"
	"cryptopet/internal/config"
	"cryptopet/internal/database"
	"cryptopet/internal/handlers"
	"cryptopet/internal/leaderboard"
	"cryptopet/internal/logger"
	"cryptopet/internal/repository"
	"cryptopet/internal/service"
)

func main() {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		logger.Logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	logger.Logger.Info("database connection established", zap.String("type", cfg.DatabaseType))

	if err := db.RunMigrations(); err != nil {
		logger.Logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis is optional; without it the leaderboard endpoints return 503
	var board *leaderboard.Board
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn("redis unavailable, leaderboard disabled", zap.Error(err))
		} else {
			board = leaderboard.NewBoard(client)
			logger.Logger.Info("leaderboard enabled", zap.String("addr", cfg.RedisAddr))
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	petRepo := repository.NewPetRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	gameRepo := repository.NewGameRepository(db)
	itemRepo := repository.NewItemRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)

	// Chain adapter: the mock signs nothing and records mints in memory,
	// which is enough for testnet development
	adapter := chain.NewMockAdapter(chain.Network(cfg.ChainNetwork))

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		logger.Logger.Fatal("failed to initialize email service", zap.Error(err))
	}
	var mailer service.BadgeMailer
	if emailService.IsEnabled() {
		mailer = emailService
	}

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionDuration)
	petService := service.NewPetService(petRepo, itemRepo)
	progressService := service.NewProgressService(progressRepo, petService)
	var scoreBoard service.ScoreBoard
	if board != nil {
		scoreBoard = board
	}
	gameService := service.NewGameService(gameRepo, petService, scoreBoard)
	rewardService := service.NewRewardService(badgeRepo, userRepo, itemRepo, progressRepo, petService, adapter, mailer)

	// Handlers
	middleware := handlers.NewMiddleware(authService)
	authHandler := handlers.NewAuthHandler(authService, handlers.NewOAuthFlow(authService, cfg))
	petHandler := handlers.NewPetHandler(petService)
	moduleHandler := handlers.NewModuleHandler(progressService)
	gameHandler := handlers.NewGameHandler(gameService, board)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	webhookHandler := handlers.NewWebhookHandler(progressService, cfg.WebhookSecret)

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("PUT /api/me", middleware.RequireAuth(authHandler.UpdateProfile))
	mux.HandleFunc("GET /api/me/email-link/start", middleware.RequireAuth(authHandler.StartEmailLink))
	mux.HandleFunc("GET /api/me/email-link/callback", authHandler.EmailLinkCallback)

	// Pet
	mux.HandleFunc("POST /api/pet", middleware.RequireAuth(petHandler.Create))
	mux.HandleFunc("GET /api/pet", middleware.RequireAuth(petHandler.Get))
	mux.HandleFunc("POST /api/pet/actions/{action}", middleware.RequireAuth(petHandler.Action))
	mux.HandleFunc("POST /api/pet/revive", middleware.RequireAuth(petHandler.Revive))
	mux.HandleFunc("POST /api/pet/items/{itemID}/use", middleware.RequireAuth(petHandler.UseItem))
	mux.HandleFunc("POST /api/pet/items/{itemID}/equip", middleware.RequireAuth(petHandler.EquipItem))

	// Learning modules
	mux.HandleFunc("GET /api/modules", middleware.RequireAuth(moduleHandler.List))
	mux.HandleFunc("GET /api/modules/{id}", middleware.RequireAuth(moduleHandler.Get))
	mux.HandleFunc("POST /api/modules/{id}/lessons/{lessonID}/complete", middleware.RequireAuth(moduleHandler.CompleteLesson))
	mux.HandleFunc("POST /api/modules/{id}/quiz", middleware.RequireAuth(moduleHandler.SubmitQuiz))
	mux.HandleFunc("POST /api/modules/{id}/practice", middleware.RequireAuth(moduleHandler.CompletePractice))
	mux.HandleFunc("POST /api/modules/{id}/badge/mint", middleware.RequireAuth(rewardHandler.MintBadge))

	// Games
	mux.HandleFunc("GET /api/games", middleware.RequireAuth(gameHandler.List))
	mux.HandleFunc("POST /api/games/{id}/start", middleware.RequireAuth(gameHandler.Start))
	mux.HandleFunc("POST /api/games/{id}/finish", middleware.RequireAuth(gameHandler.Finish))
	mux.HandleFunc("GET /api/games/history", middleware.RequireAuth(gameHandler.History))
	mux.HandleFunc("GET /api/games/{id}/leaderboard", middleware.RequireAuth(gameHandler.Leaderboard))
	mux.HandleFunc("GET /api/games/{id}/rank", middleware.RequireAuth(gameHandler.Rank))

	// Rewards
	mux.HandleFunc("GET /api/badges", middleware.RequireAuth(rewardHandler.Badges))
	mux.HandleFunc("POST /api/rewards/daily/claim", middleware.RequireAuth(rewardHandler.ClaimDaily))
	mux.HandleFunc("GET /api/inventory", middleware.RequireAuth(rewardHandler.Inventory))

	// Webhooks
	mux.HandleFunc("POST /webhooks/practice", webhookHandler.PracticeCompleted)

	handler := middleware.RequestLogger(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute)(mux))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go cleanupExpiredSessions(authService)

	go func() {
		logger.Logger.Info("server starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error("shutdown error", zap.Error(err))
	}
}

// cleanupExpiredSessions periodically removes expired refresh sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupSessions(); err != nil {
			logger.Logger.Error("session cleanup failed", zap.Error(err))
		}
	}
}
