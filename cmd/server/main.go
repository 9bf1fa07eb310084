package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dwguild/backend/internal/config"
	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/filestore"
	"github.com/dwguild/backend/internal/handler"
	"github.com/dwguild/backend/internal/middleware"
	"github.com/dwguild/backend/internal/repository"
	"github.com/dwguild/backend/internal/service"
	"github.com/dwguild/backend/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.UsingFallbackSecret() {
		slog.Warn("SECRET_KEY is not set; signing tokens with the built-in fallback secret")
	}

	// Initialize JWT service
	jwtService := jwt.NewService(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: time.Duration(cfg.JWT.ExpirationMins) * time.Minute,
	})

	// Initialize repositories for the configured storage backend
	var (
		memberRepo service.MemberRepository
		groupRepo  service.RaidGroupRepository
		bossRepo   service.BossRepository
	)

	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err := filestore.Open(cfg.Storage.DataFile)
		if err != nil {
			slog.Error("failed to open data file", slog.String("error", err.Error()))
			os.Exit(1)
		}

		slog.Info("using file storage", slog.String("path", cfg.Storage.DataFile))

		memberRepo = filestore.NewMemberRepository(store)
		groupRepo = filestore.NewRaidGroupRepository(store)
		bossRepo = filestore.NewBossRepository(store)

	case config.BackendSurrealDB:
		db := database.NewSurrealDB(database.Config{
			Host:           cfg.Storage.Database.Host,
			Port:           cfg.Storage.Database.Port,
			User:           cfg.Storage.Database.User,
			Password:       cfg.Storage.Database.Password,
			Namespace:      cfg.Storage.Database.Namespace,
			Database:       cfg.Storage.Database.Database,
			ConnectTimeout: cfg.Storage.Database.ConnectTimeout,
		})

		if err := db.Connect(context.Background()); err != nil {
			slog.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()

		slog.Info("connected to database",
			slog.String("host", cfg.Storage.Database.Host),
			slog.String("database", cfg.Storage.Database.Database),
		)

		memberRepo = repository.NewMemberRepository(db)
		groupRepo = repository.NewRaidGroupRepository(db)
		bossRepo = repository.NewBossRepository(db)
	}

	// Initialize services
	authService, err := service.NewAuthService(service.AuthServiceConfig{
		Username:     cfg.Admin.Username,
		Password:     cfg.Admin.Password,
		TokenService: jwtService,
	})
	if err != nil {
		slog.Error("failed to initialize auth service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	memberService := service.NewMemberService(memberRepo)
	groupService := service.NewRaidGroupService(groupRepo)
	bossService := service.NewBossService(bossRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	groupHandler := handler.NewRaidGroupHandler(groupService)
	bossHandler := handler.NewBossHandler(bossService)

	// Create router and register routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handler.Home)
	mux.HandleFunc("GET /health", handler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /login", authHandler.Login)

	// Member endpoints (roster reads are public, writes require a token)
	guard := middleware.Auth(authService)
	mux.HandleFunc("GET /members", memberHandler.List)
	mux.Handle("POST /members", guard(http.HandlerFunc(memberHandler.Create)))
	mux.Handle("PUT /members/{id}", guard(http.HandlerFunc(memberHandler.Update)))
	mux.Handle("DELETE /members/{id}", guard(http.HandlerFunc(memberHandler.Delete)))

	// Raid group endpoints (all protected)
	mux.Handle("GET /raid-groups", guard(http.HandlerFunc(groupHandler.List)))
	mux.Handle("GET /raid-groups/{id}", guard(http.HandlerFunc(groupHandler.Get)))
	mux.Handle("POST /raid-groups", guard(http.HandlerFunc(groupHandler.Create)))
	mux.Handle("PUT /raid-groups/{id}", guard(http.HandlerFunc(groupHandler.Update)))

	// Boss endpoints (reads are public, the roles mapping is protected)
	mux.HandleFunc("GET /bosses", bossHandler.List)
	mux.HandleFunc("GET /bosses/{id}", bossHandler.Get)
	mux.HandleFunc("GET /bosses/name/{name}", bossHandler.GetByName)
	mux.Handle("PUT /bosses/{id}/roles", guard(http.HandlerFunc(bossHandler.UpdateRoles)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("backend", cfg.Storage.Backend),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
