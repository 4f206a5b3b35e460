package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-app/backend/internal/auth"
	"todo-app/backend/internal/cache"
	"todo-app/backend/internal/config"
	"todo-app/backend/internal/database"
	"todo-app/backend/internal/handlers"
	"todo-app/backend/internal/repositories"
	"todo-app/backend/internal/router"
	"todo-app/backend/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	userStore := repositories.NewUserStore(db)
	taskStore := repositories.NewTaskStore(db)

	authService := services.NewAuthService(userStore, tokens, cfg.Auth.BCryptCost)

	var taskService services.TaskService = services.NewTaskService(taskStore)
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(&cache.CacheConfig{
			Addr:         cfg.GetRedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		defer redisCache.Close()
		taskService = services.NewCachedTaskService(taskService, redisCache)
		log.Println("Task caching enabled")
	}

	engine := router.New(
		handlers.NewAuthHandler(authService),
		handlers.NewTaskHandler(taskService),
		tokens,
		cfg.Server.AllowOrigins,
	)

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
