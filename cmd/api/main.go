package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"moneybook/internal/clock"
	"moneybook/internal/config"
	"moneybook/internal/database"
	"moneybook/internal/logger"
	"moneybook/internal/notify"
	"moneybook/internal/router"
	"moneybook/internal/services"
	"moneybook/internal/store"
)

// @title           Moneybook API
// @version         1.0
// @description     Moneybook keeps personal income and expense records in sync across offline devices and tracks spending against budgets.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	publisher, err := newPublisher(appConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnw("failed to close sync publisher", "error", err)
		}
	}()

	// Initialize stores and services
	db := dbManager.DB()
	clk := clock.System{}
	transactionStore := store.NewTransactionStore(db)
	syncLogService := services.NewSyncLogService(store.NewSyncLogStore(db), publisher)
	transactionService := services.NewTransactionService(transactionStore, syncLogService, clk)
	budgetStore := services.NewBudgetStore(snapshotStore(appConfig, dbManager), clk)
	budgetService := services.NewBudgetService(budgetStore, transactionStore, clk)

	engine := router.New(router.Services{
		Transactions: transactionService,
		Budgets:      budgetService,
		SyncLog:      syncLogService,
	}, router.Options{AdminAPIKey: appConfig.AdminAPIKey})

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Moneybook server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Info("Server stopped")
		return nil
	})

	return g.Wait()
}

// newPublisher connects to the broker when AMQP_URL is set. Without it sync
// entries are only recorded, never announced.
func newPublisher(cfg *config.Config) (notify.Publisher, error) {
	if cfg.AMQPURL == "" {
		logger.Get().Info("AMQP_URL not set, sync events will not be published")
		return notify.Nop{}, nil
	}
	p, err := notify.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, fmt.Errorf("failed to connect sync publisher: %w", err)
	}
	logger.Get().Infow("Publishing sync events", "exchange", cfg.AMQPExchange)
	return p, nil
}

func snapshotStore(cfg *config.Config, dbManager *database.Manager) store.SnapshotStore {
	if cfg.BudgetStore == config.BudgetStoreDB {
		return store.NewDBSnapshotStore(dbManager.DB())
	}
	return store.NewFileSnapshotStore(cfg.DataDir)
}
