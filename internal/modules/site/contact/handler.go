package contact

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

// Path is the public contact page.
const Path = "/contact/"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterPublicRoutes mounts the contact page; submitMW guard the POST only.
func (h *Handler) RegisterPublicRoutes(rg gin.IRouter, submitMW ...gin.HandlerFunc) {
	rg.GET(Path, h.show)
	rg.POST(Path, append(submitMW, h.submit)...)
}

// RegisterRoutes mounts the owner's message inbox.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/messages", authMW)
	g.GET("", h.listMessages)
	g.PATCH("/:id/read", h.toggleRead)
	g.DELETE("/:id", h.deleteMessage)
}

type pageView struct {
	Form  Form   `json:"form"`
	Flash *Flash `json:"flash,omitempty"`
}

// GET /contact/
func (h *Handler) show(c *gin.Context) {
	response.OK(c, pageView{Form: ContactForm, Flash: popFlash(c)})
}

func isFormPost(c *gin.Context) bool {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

// POST /contact/
func (h *Handler) submit(c *gin.Context) {
	formPost := isFormPost(c)

	var sub Submission
	if err := c.ShouldBind(&sub); err != nil {
		response.BadRequest(c, "malformed submission")
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), sub)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			extra := gin.H{"form": ContactForm}
			if formPost {
				extra["values"] = sub.values()
			}
			response.Invalid(c, verr.Fields, extra)
			return
		}
		response.InternalError(c, err)
		return
	}

	if formPost {
		level := "success"
		if result.State != StateNotified {
			level = "error"
		}
		setFlash(c, Flash{Level: level, Message: result.Acknowledgment()})
		c.Redirect(http.StatusSeeOther, Path)
		return
	}

	response.Created(c, gin.H{
		"id":      result.Message.ID,
		"status":  result.State,
		"message": result.Acknowledgment(),
	})
}

// GET /messages?unread=1
func (h *Handler) listMessages(c *gin.Context) {
	unread, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))
	items, err := h.svc.ListMessages(unread)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, ToMessageResponses(items))
}

type readDTO struct {
	Read *bool `json:"read"`
}

// PATCH /messages/:id/read
func (h *Handler) toggleRead(c *gin.Context) {
	var dto readDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&dto); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	m, err := h.svc.ToggleRead(c.Param("id"), dto.Read)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, ToMessageResponse(m))
}

// DELETE /messages/:id
func (h *Handler) deleteMessage(c *gin.Context) {
	ok, err := h.svc.DeleteMessage(c.Param("id"))
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
