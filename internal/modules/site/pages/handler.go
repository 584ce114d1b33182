package pages

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

// Handler serves the public pages as JSON view models.
type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg gin.IRouter) {
	rg.GET("/", h.home)
	rg.GET("/about/", h.about)
	rg.GET("/projects/", h.projects)
	rg.GET("/projects/:id/", h.project)
	rg.GET("/documents/", h.documents)
	rg.GET("/documents/:id/", h.document)
}

func (h *Handler) home(c *gin.Context) {
	view, err := h.svc.Home()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, view)
}

func (h *Handler) about(c *gin.Context) {
	view, err := h.svc.About()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, view)
}

func (h *Handler) projects(c *gin.Context) {
	view, err := h.svc.Projects()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, view)
}

func (h *Handler) project(c *gin.Context) {
	view, err := h.svc.Project(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if view == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, view)
}

func (h *Handler) documents(c *gin.Context) {
	view, err := h.svc.Documents()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, view)
}

func (h *Handler) document(c *gin.Context) {
	view, err := h.svc.Document(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if view == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, view)
}
