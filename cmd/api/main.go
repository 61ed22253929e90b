package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ecoeventos/eventos-api/internal/config"
	"github.com/ecoeventos/eventos-api/internal/database"
	"github.com/ecoeventos/eventos-api/internal/handler"
	"github.com/ecoeventos/eventos-api/internal/middleware"
	"github.com/ecoeventos/eventos-api/internal/models"
	"github.com/ecoeventos/eventos-api/internal/repository"
	"github.com/ecoeventos/eventos-api/internal/router"
	"github.com/ecoeventos/eventos-api/internal/service"
	"github.com/ecoeventos/eventos-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Event{}, &models.Comment{}, &models.Faq{}, &models.ModerationLog{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer cache.Close()
	} else {
		logger.Warn().Msg("redis url not configured, faq cache disabled")
	}

	validate := utils.NewValidator()

	faqRepo := repository.NewFaqRepository(db)
	eventRepo := repository.NewEventRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	moderationLogRepo := repository.NewModerationLogRepository(db)

	faqService := service.NewFaqService(faqRepo, cache, cfg.FaqCacheTTL, validate, logger)
	eventService := service.NewEventService(eventRepo, commentRepo, validate, logger)
	commentService := service.NewCommentService(commentRepo, eventRepo, moderationLogRepo, validate, cfg.DefaultCommentAuthor, logger)

	faqHandler := handler.NewFaqHandler(faqService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		FaqHandler:     faqHandler,
		EventHandler:   eventHandler,
		CommentHandler: commentHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
