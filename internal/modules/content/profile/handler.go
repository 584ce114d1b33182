package profile

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/profile", authMW)
	g.GET("", h.get)
	g.PUT("", h.update)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "profile has not been created yet")
		return
	}
	response.OK(c, ToResponse(p))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(&dto)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, ToResponse(p))
}
