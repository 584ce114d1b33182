package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/middleware"
	"github.com/mx-space/portfolio/internal/pkg/response"
	sessionpkg "github.com/mx-space/portfolio/internal/pkg/session"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)

	a := g.Group("", authMW)
	a.POST("/logout", h.logout)
	a.GET("/session", h.session)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, errOwnerAlreadyRegistered) {
			response.Forbidden(c, "owner already registered")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toUserResponse(u))
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, sess, u, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errAuthUserNotFound) || errors.Is(err, errAuthWrongPassword) {
			response.UnauthorizedMsg(c, "invalid username or password")
			return
		}
		response.InternalError(c, err)
		return
	}
	setAuthTokenCookie(c, token)
	response.OK(c, loginResponse{Token: token, ExpiresAt: sess.ExpiresAt, User: toUserResponse(u)})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	clearAuthTokenCookie(c)
	response.NoContent(c)
}

func (h *Handler) session(c *gin.Context) {
	u, err := h.svc.GetUser(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, sessionResponse{SessionID: middleware.CurrentSessionID(c), User: toUserResponse(u)})
}

func setAuthTokenCookie(c *gin.Context, token string) {
	maxAge := int(sessionpkg.DefaultTTL.Seconds())
	secure := c.Request.TLS != nil
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", secure, true)
}

func clearAuthTokenCookie(c *gin.Context) {
	secure := c.Request.TLS != nil
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", secure, true)
}
