package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/corebank/retail_banking_app/internal/core/services"
	"github.com/corebank/retail_banking_app/internal/handlers"
	"github.com/corebank/retail_banking_app/internal/middleware"
	"github.com/corebank/retail_banking_app/internal/repositories/database/pgsql"
	"github.com/corebank/retail_banking_app/pkg/config"
	"github.com/corebank/retail_banking_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	setupAPIRoutes(r, cfg, dbPool, logger)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory using a temporary database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func setupAPIRoutes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) {
	customerRepo := pgsql.NewCustomerRepository(dbPool)
	accountRepo := pgsql.NewAccountRepository(dbPool)
	txnRepo := pgsql.NewTransactionRepository(dbPool)

	customerService := services.NewCustomerService(customerRepo, services.CustomerServiceConfig{
		JWTSecret:  cfg.JWTSecret,
		JWTExpiry:  cfg.JWTExpiryDuration,
		JWTIssuer:  cfg.JWTIssuer,
		BcryptCost: cfg.BcryptCost,
	})
	accountService := services.NewAccountService(accountRepo)
	txnService := services.NewTransactionService(accountRepo, txnRepo)

	customerHandler := handlers.NewCustomerHandler(customerService)
	accountHandler := handlers.NewAccountHandler(accountService)
	txnHandler := handlers.NewTransactionHandler(txnService)

	loginRate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		logger.Error("Invalid login rate limit format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	loginLimiter := limiter.New(memory.NewStore(), loginRate)

	v1 := r.Group("/api/v1.0")

	// Public routes
	v1.POST("/customer", customerHandler.Register)
	v1.POST("/customer/login", middleware.RateLimit(loginLimiter), customerHandler.Login)

	// Authenticated routes
	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/customer", customerHandler.GetDetails)
		authed.PUT("/customer", customerHandler.UpdateProfile)
		authed.PUT("/customer/password", customerHandler.UpdatePassword)

		authed.POST("/account", accountHandler.CreateAccount)
		authed.GET("/account", accountHandler.ListAccounts)
		authed.DELETE("/account/:uuid", accountHandler.DeleteAccount)

		authed.POST("/transaction", txnHandler.CreateTransaction)
		authed.GET("/transaction", txnHandler.ListTransactions)
		authed.POST("/transaction/transfer", txnHandler.TransferFunds)
	}
}
