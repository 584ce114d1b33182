package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/database"
	"github.com/mx-space/portfolio/internal/middleware"
	"github.com/mx-space/portfolio/internal/modules/site/contact"
	"github.com/mx-space/portfolio/internal/modules/storage"
	"github.com/mx-space/portfolio/internal/pkg/mail"
	pkgredis "github.com/mx-space/portfolio/internal/pkg/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the external collaborators the HTTP layer is built on. Redis is
// optional; Notifier and Storage default from config when nil.
type Deps struct {
	DB       *gorm.DB
	Redis    *pkgredis.Client
	Notifier contact.Notifier
	Storage  storage.Backend
}

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	deps   Deps
	mailer *mail.Sender
	logger *zap.Logger
}

// New initializes the application: config → DB → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := applyRuntimeSettings(cfg, logger); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	var rc *pkgredis.Client
	if cfg.Redis.Enable {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	}

	return Build(logger, cfg, Deps{DB: db, Redis: rc})
}

// Build wires routes over already-opened dependencies.
func Build(logger *zap.Logger, cfg *config.AppConfig, deps Deps) (*App, error) {
	if deps.DB == nil {
		return nil, errors.New("database is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	sender := mail.New(mail.BuildMailConfig(cfg.Mail))
	if !sender.Enabled() {
		logger.Warn("mail is disabled, contact messages will be stored without notification")
	}
	if deps.Notifier == nil {
		deps.Notifier = sender
	}
	if deps.Storage == nil {
		backend, err := storage.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		deps.Storage = backend
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	router.Use(cors.New(newCORSConfig(cfg)))

	app := &App{cfg: cfg, router: router, deps: deps, mailer: sender, logger: logger}
	app.registerRoutes()
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases the store and Redis connections.
func (a *App) Shutdown() {
	if a.deps.Redis != nil {
		if err := a.deps.Redis.Close(); err != nil {
			a.logger.Warn("redis close failed", zap.Error(err))
		}
	}
	if sqlDB, err := a.deps.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
