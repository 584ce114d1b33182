package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/models"
	pkgmail "github.com/mx-space/portfolio/internal/pkg/mail"
	pkgredis "github.com/mx-space/portfolio/internal/pkg/redis"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"gorm.io/gorm"
)

// Mailer is the part of pkg/mail the test endpoint needs.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, msg pkgmail.Message) error
}

type Handler struct {
	db     *gorm.DB
	redis  *pkgredis.Client
	mailer Mailer
	admins []string
	start  time.Time
}

func NewHandler(db *gorm.DB, rc *pkgredis.Client, mailer Mailer, admins []string) *Handler {
	return &Handler{db: db, redis: rc, mailer: mailer, admins: admins, start: time.Now()}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/health", h.status)
	rg.POST("/health/email/test", authMW, h.testEmail)
}

func (h *Handler) status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	dbOK := err == nil && sqlDB.PingContext(ctx) == nil

	body := gin.H{
		"database": dbOK,
		"uptime":   time.Since(h.start).Truncate(time.Second).String(),
	}
	healthy := dbOK
	if h.redis != nil {
		redisOK := h.redis.Raw().Ping(ctx).Err() == nil
		body["redis"] = redisOK
		healthy = healthy && redisOK
	}

	code := http.StatusOK
	body["status"] = "ok"
	if !healthy {
		code = http.StatusServiceUnavailable
		body["status"] = "degraded"
	}
	c.JSON(code, body)
}

func (h *Handler) testEmail(c *gin.Context) {
	if h.mailer == nil || !h.mailer.Enabled() {
		response.UnprocessableEntity(c, "mail is not enabled")
		return
	}

	to := h.admins
	if len(to) == 0 {
		var owner models.UserModel
		if err := h.db.Select("mail").First(&owner).Error; err == nil && owner.Mail != "" {
			to = []string{owner.Mail}
		}
	}
	if len(to) == 0 {
		response.UnprocessableEntity(c, "no recipient configured")
		return
	}

	err := h.mailer.Send(c.Request.Context(), pkgmail.Message{
		To:      to,
		Subject: "Portfolio mail test",
		HTML:    "<p>Mail delivery is configured correctly.</p>",
		Text:    "Mail delivery is configured correctly.",
	})
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	response.OK(c, gin.H{"sent_to": to})
}
