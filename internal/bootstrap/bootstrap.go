package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rakibul/unibus/internal/app/controllers"
	appMigrations "github.com/rakibul/unibus/internal/app/migrations"
	appRepos "github.com/rakibul/unibus/internal/app/repositories"
	appRoutes "github.com/rakibul/unibus/internal/app/routes"
	appServices "github.com/rakibul/unibus/internal/app/services"
	"github.com/rakibul/unibus/internal/config"
	"github.com/rakibul/unibus/internal/db"
	appMiddleware "github.com/rakibul/unibus/internal/middleware"
	pkgAuth "github.com/rakibul/unibus/internal/pkg/auth"
	"github.com/rakibul/unibus/internal/pkg/helpers"
	"github.com/rakibul/unibus/internal/pkg/logger"
	"github.com/rakibul/unibus/internal/pkg/oauth"
	ws "github.com/rakibul/unibus/internal/pkg/websocket"
	"github.com/rakibul/unibus/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	UserService         appServices.UserService
	ScheduleService     appServices.ScheduleService
	FeedbackService     appServices.FeedbackService
	ComplaintService    appServices.ComplaintService
	NoticeService       appServices.NoticeService
	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	ScheduleController  *appControllers.ScheduleController
	FeedbackController  *appControllers.FeedbackController
	ComplaintController *appControllers.ComplaintController
	NoticeController    *appControllers.NoticeController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	AuthLimiter         *appMiddleware.RateLimiter
	SubmitLimiter       *appMiddleware.RateLimiter
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	NoticeHub           *ws.Hub
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	var googleProvider *oauth.GoogleProvider
	if cfg.OAuthEnabled() {
		googleProvider = oauth.NewGoogleProvider(oauth.Config{
			ClientID:     cfg.OAuth.GoogleClientID,
			ClientSecret: cfg.OAuth.GoogleClientSecret,
			RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		})
		lgr.Info().Msg("Google sign-in enabled")
	} else {
		lgr.Info().Msg("Google sign-in not configured, provider endpoints will report misconfiguration")
	}

	// The notice hub fans out live notice events over websockets
	deps.NoticeHub = ws.NewHub(lgr)
	go deps.NoticeHub.Run()

	startTokenJanitor(deps.Repos.TokenRepository, tokenCleanupInterval, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		googleProvider,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.ScheduleRepository)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository, deps.NoticeHub)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.AuthLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute)
	deps.SubmitLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.SubmitPerMinute)

	feedHandler := ws.NewHandler(deps.NoticeHub, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService, lgr)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService, lgr)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService, lgr)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService, feedHandler, lgr)

	return deps, nil
}

const tokenCleanupInterval = time.Hour

// expiredTokenCleaner is the slice of the token repository the janitor needs
type expiredTokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// startTokenJanitor periodically removes expired refresh tokens so the
// tokens table does not grow without bound. The returned function stops
// the janitor.
func startTokenJanitor(cleaner expiredTokenCleaner, interval time.Duration, lgr zerolog.Logger) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				removed, err := cleaner.CleanupExpiredTokens(ctx)
				cancel()
				if err != nil {
					lgr.Warn().Err(err).Msg("Expired refresh token cleanup failed")
				} else if removed > 0 {
					lgr.Info().Int64("removed", removed).Msg("Expired refresh tokens removed")
				}
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ScheduleController,
		deps.FeedbackController,
		deps.ComplaintController,
		deps.NoticeController,
		deps.AuthMiddleware,
		deps.AuthLimiter,
		deps.SubmitLimiter,
	)

	return router
}
