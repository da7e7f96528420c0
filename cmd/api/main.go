package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httphandlers "github.com/investapp/backend/internal/handlers/http"
	"github.com/investapp/backend/internal/handlers/middleware"
	"github.com/investapp/backend/internal/infrastructure/config"
	"github.com/investapp/backend/internal/infrastructure/i18n"
	"github.com/investapp/backend/internal/infrastructure/logging"
	"github.com/investapp/backend/internal/infrastructure/persistence/postgres"
	"github.com/investapp/backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("starting investapp API", "env", cfg.Env, "port", cfg.Server.Port)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		logger.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	if cfg.Seed {
		if err := postgres.Seed(db, logger); err != nil {
			logger.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	i18nService, err := i18n.NewService("pt-BR")
	if err != nil {
		logger.Error("failed to load translations", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	investmentRepo := postgres.NewInvestmentRepository(db)
	holdingRepo := postgres.NewUserInvestmentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	userService := services.NewUserService(userRepo, logger)
	investmentService := services.NewInvestmentService(investmentRepo, logger)
	holdingService := services.NewUserInvestmentService(holdingRepo, userRepo, investmentRepo, uow, logger)
	identityService := services.NewIdentityService(userRepo)

	callerMiddleware := middleware.NewCallerMiddleware(identityService, logger)

	router := httphandlers.NewRouter(cfg, logger, i18nService, callerMiddleware, httphandlers.Handlers{
		User:           httphandlers.NewUserHandler(userService, logger),
		Investment:     httphandlers.NewInvestmentHandler(investmentService, logger),
		UserInvestment: httphandlers.NewUserInvestmentHandler(holdingService, logger),
		Auth:           httphandlers.NewAuthHandler(userService, logger),
	})

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
