package timeline

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	edu := rg.Group("/education", authMW)
	edu.GET("", h.listEducation)
	edu.POST("", h.createEducation)
	edu.PUT("/:id", h.updateEducation)
	edu.DELETE("/:id", h.deleteEducation)

	exp := rg.Group("/experience", authMW)
	exp.GET("", h.listExperience)
	exp.POST("", h.createExperience)
	exp.PUT("/:id", h.updateExperience)
	exp.DELETE("/:id", h.deleteExperience)
}

func (h *Handler) listEducation(c *gin.Context) {
	items, err := h.svc.ListEducation()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, ToEducationResponses(items))
}

func (h *Handler) createEducation(c *gin.Context) {
	var dto EducationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.CreateEducation(&dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, ToEducationResponse(item))
}

func (h *Handler) updateEducation(c *gin.Context) {
	var dto EducationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.UpdateEducation(c.Param("id"), &dto)
	if err != nil {
		writeError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, ToEducationResponse(item))
}

func (h *Handler) deleteEducation(c *gin.Context) {
	ok, err := h.svc.DeleteEducation(c.Param("id"))
	writeDelete(c, ok, err)
}

func (h *Handler) listExperience(c *gin.Context) {
	items, err := h.svc.ListExperience()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, ToExperienceResponses(items))
}

func (h *Handler) createExperience(c *gin.Context) {
	var dto ExperienceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.CreateExperience(&dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, ToExperienceResponse(item))
}

func (h *Handler) updateExperience(c *gin.Context) {
	var dto ExperienceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.UpdateExperience(c.Param("id"), &dto)
	if err != nil {
		writeError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, ToExperienceResponse(item))
}

func (h *Handler) deleteExperience(c *gin.Context) {
	ok, err := h.svc.DeleteExperience(c.Param("id"))
	writeDelete(c, ok, err)
}

func writeDelete(c *gin.Context, ok bool, err error) {
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalid) {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	response.InternalError(c, err)
}
