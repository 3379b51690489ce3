package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/alumnet/internal/app/controllers"
	appMigrations "github.com/yigit/alumnet/internal/app/migrations"
	appRoutes "github.com/yigit/alumnet/internal/app/routes"
	appServices "github.com/yigit/alumnet/internal/app/services"
	"github.com/yigit/alumnet/internal/config"
	"github.com/yigit/alumnet/internal/db"
	appMiddleware "github.com/yigit/alumnet/internal/middleware"
	pkgAuth "github.com/yigit/alumnet/internal/pkg/auth"
	"github.com/yigit/alumnet/internal/pkg/logger"
	"github.com/yigit/alumnet/internal/pkg/session"
	"github.com/yigit/alumnet/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	ProfileService    *appServices.ProfileService
	ResourceService   *appServices.ResourceService
	Controllers       appRoutes.Controllers
	SessionMiddleware *appMiddleware.SessionMiddleware
	SessionCookie     *appMiddleware.SessionCookie
	Metrics           *appMiddleware.Metrics
	MetricsRegistry   *prometheus.Registry
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  strings.ToLower(cfg.Logging.Format) == "text",
		Service: "alumnet",
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Server.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupRedis connects the session store client and checks it answers.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to ping redis")
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection successfully established.")
	return rdb, nil
}

// BuildDependencies initializes application services, middleware and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, rdb *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	tokens := pkgAuth.NewSessionTokenService(pkgAuth.TokenConfig{
		SecretKey:   cfg.Session.Secret,
		TTL:         cfg.Session.TTL,
		TokenIssuer: cfg.Session.Issuer,
	})
	store := session.NewRedisStore(rdb, cfg.Session.TTL)

	deps.AuthService = appServices.NewAuthService(dbPool, store, lgr)
	deps.ProfileService = appServices.NewProfileService(dbPool, lgr)
	deps.ResourceService = appServices.NewResourceService(dbPool, appServices.DefaultResourceDefinitions(), lgr)

	deps.SessionCookie = &appMiddleware.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
		Tokens: tokens,
	}
	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionCookie, deps.AuthService)

	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(deps.AuthService, deps.SessionCookie, lgr),
		Profile:  appControllers.NewProfileController(deps.ProfileService),
		Resource: appControllers.NewResourceController(deps.ResourceService),
		Health: appControllers.NewHealthController(
			dbPool.Ping,
			func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		),
	}

	deps.MetricsRegistry = prometheus.NewRegistry()
	deps.MetricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = appMiddleware.NewMetrics(deps.MetricsRegistry)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(deps.Metrics.Handler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	if len(corsConfig.AllowOrigins) > 0 {
		router.Use(cors.New(corsConfig))
	}

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{})))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.SessionMiddleware)

	return router
}
