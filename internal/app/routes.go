package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/middleware"
	"github.com/mx-space/portfolio/internal/modules/auth"
	"github.com/mx-space/portfolio/internal/modules/content/document"
	"github.com/mx-space/portfolio/internal/modules/content/profile"
	"github.com/mx-space/portfolio/internal/modules/content/project"
	"github.com/mx-space/portfolio/internal/modules/content/skill"
	"github.com/mx-space/portfolio/internal/modules/content/timeline"
	"github.com/mx-space/portfolio/internal/modules/health"
	"github.com/mx-space/portfolio/internal/modules/site/contact"
	"github.com/mx-space/portfolio/internal/modules/site/pages"
	"github.com/mx-space/portfolio/internal/modules/storage"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"gorm.io/gorm"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes() {
	r := a.router
	db := a.deps.DB
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Shared services
	profileSvc := profile.NewService(db)
	projectSvc := project.NewService(db)
	skillSvc := skill.NewService(db)
	timelineSvc := timeline.NewService(db)
	documentSvc := document.NewService(db)
	contactSvc := contact.NewService(db, a.deps.Notifier, profileSvc, a.cfg.Mail.Admins, a.logger)
	storageHandler := storage.NewHandler(a.deps.Storage, a.logger)

	// Public site
	root := r.Group("")
	pages.NewHandler(pages.NewService(profileSvc, projectSvc, skillSvc, timelineSvc, documentSvc)).RegisterRoutes(root)
	contact.NewHandler(contactSvc).RegisterPublicRoutes(root, a.contactGuards(db)...)
	storageHandler.RegisterMediaRoutes(root)

	// Administrative API
	api := r.Group(apiPrefix)
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	health.NewHandler(db, a.deps.Redis, a.mailer, a.cfg.Mail.Admins).RegisterRoutes(api, authMW)

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)
	profile.NewHandler(profileSvc).RegisterRoutes(api, authMW)
	project.NewHandler(projectSvc).RegisterRoutes(api, authMW)
	skill.NewHandler(skillSvc).RegisterRoutes(api, authMW)
	timeline.NewHandler(timelineSvc).RegisterRoutes(api, authMW)
	document.NewHandler(documentSvc).RegisterRoutes(api, authMW)
	contact.NewHandler(contactSvc).RegisterRoutes(api, authMW)
	storageHandler.RegisterRoutes(api, authMW)
}

// contactGuards throttles anonymous contact submissions. Counters live in
// Redis when it is configured and in process memory otherwise.
func (a *App) contactGuards(db *gorm.DB) []gin.HandlerFunc {
	var store middleware.CounterStore
	if a.deps.Redis != nil {
		store = middleware.NewRedisCounter(a.deps.Redis)
	} else {
		store = middleware.NewMemoryCounter()
	}

	return []gin.HandlerFunc{
		middleware.OptionalAuth(db),
		middleware.RateLimit(store, middleware.RateLimitConfig{
			Name:   "contact",
			Limit:  a.cfg.Contact.RateLimit,
			Window: a.cfg.Contact.RateWindow,
		}, a.logger),
		middleware.Idempotence(a.deps.Redis, a.logger),
	}
}
