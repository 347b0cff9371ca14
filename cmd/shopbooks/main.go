package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	"github.com/SscSPs/shopbooks/internal/core/services"
	"github.com/SscSPs/shopbooks/internal/handlers"
	"github.com/SscSPs/shopbooks/internal/middleware"
	"github.com/SscSPs/shopbooks/internal/platform/config"
	"github.com/SscSPs/shopbooks/internal/repositories/database/pgsql"
	"github.com/SscSPs/shopbooks/internal/repositories/database/sqlite"
	"github.com/SscSPs/shopbooks/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Shopbooks API
// @version 1.0
// @description Day-book, cheque register and sales analytics for a small group of retail shops.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	container := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		logger.Error("Failed to create login rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, repos.Ping, loginLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("postgres", cfg.UsePostgres()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore connects to PostgreSQL when PGSQL_URL is set and to the local
// SQLite file otherwise, applying migrations either way.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	if cfg.UsePostgres() {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		// Migrations run over a short-lived database/sql handle on the pgx stdlib driver
		migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			database.ClosePgxPool(dbPool)
			return repositories.RepositoryProvider{}, nil, err
		}
		logger.Info("Running database migrations...")
		err = database.MigratePostgres(migrationDB, migrationSource(cfg, "postgres"))
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
		if err != nil {
			database.ClosePgxPool(dbPool)
			return repositories.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}

	db, err := database.NewSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return repositories.RepositoryProvider{}, nil, err
	}
	logger.Info("Running database migrations...", slog.String("sqlite_path", cfg.SQLitePath))
	if err := database.MigrateSQLite(db, migrationSource(cfg, "sqlite")); err != nil {
		db.Close()
		return repositories.RepositoryProvider{}, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing sqlite database", slog.String("error", err.Error()))
		}
	}
	return sqlite.NewRepositoryProvider(db), closeDB, nil
}

// migrationSource returns "" for the embedded migrations.
func migrationSource(cfg *config.Config, dialect string) string {
	if cfg.MigrationsPath == "" {
		return ""
	}
	return "file://" + cfg.MigrationsPath + "/" + dialect
}
