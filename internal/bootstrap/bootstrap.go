package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/givehope/givehope/internal/app/controllers"
	appRoutes "github.com/givehope/givehope/internal/app/routes"
	appServices "github.com/givehope/givehope/internal/app/services"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/config"
	appMiddleware "github.com/givehope/givehope/internal/middleware"
	pkgAuth "github.com/givehope/givehope/internal/pkg/auth"
	"github.com/givehope/givehope/internal/pkg/logger"
	"github.com/givehope/givehope/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store              *store.Store
	Sessions           *pkgAuth.SessionManager
	AuthService        appServices.AuthService
	CampaignService    appServices.CampaignService
	DonationService    appServices.DonationService
	CategoryService    appServices.CategoryService
	AdminService       appServices.AdminService
	AuthController     *appControllers.AuthController
	UserController     *appControllers.UserController
	CampaignController *appControllers.CampaignController
	DonationController *appControllers.DonationController
	CategoryController *appControllers.CategoryController
	AdminController    *appControllers.AdminController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logFormat := strings.ToLower(cfg.Logging.Format)
	prettyLog := logFormat == "text" || logFormat == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the store, session manager, services and
// controllers, and seeds the default data.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Store = store.New()
	deps.Sessions = pkgAuth.NewSessionManager(pkgAuth.SessionConfig{
		TTL:           cfg.SessionTTL(),
		SweepInterval: cfg.SessionSweepInterval(),
	})

	if err := seed.CreateDefaultData(deps.Store, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data")
		return nil, err
	}

	deps.AuthService = appServices.NewAuthService(deps.Store, deps.Sessions, lgr)
	deps.CampaignService = appServices.NewCampaignService(deps.Store)
	deps.DonationService = appServices.NewDonationService(deps.Store, lgr)
	deps.CategoryService = appServices.NewCategoryService(deps.Store)
	deps.AdminService = appServices.NewAdminService(deps.Store, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions, deps.Store, cfg.Session.CookieName)

	cookie := appControllers.CookieSettings{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.SessionTTL().Seconds()),
		Secure: cfg.Session.Secure || cfg.IsProduction(),
	}

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cookie, lgr)
	deps.UserController = appControllers.NewUserController(deps.AuthService, deps.DonationService, lgr)
	deps.CampaignController = appControllers.NewCampaignController(deps.CampaignService, lgr)
	deps.DonationController = appControllers.NewDonationController(deps.DonationService, lgr)
	deps.CategoryController = appControllers.NewCategoryController(deps.CategoryService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CampaignController,
		deps.DonationController,
		deps.CategoryController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
