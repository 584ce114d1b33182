package storage

import (
	"errors"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler accepts admin uploads and serves locally stored media.
type Handler struct {
	backend Backend
	local   *Local
	logger  *zap.Logger
}

func NewHandler(backend Backend, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{backend: backend, logger: logger.Named("Storage")}
	if l, ok := backend.(*Local); ok {
		h.local = l
	}
	return h
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/files", authMW)
	g.POST("/upload", h.upload)
	g.DELETE("/:type/:name", h.delete)
}

// RegisterMediaRoutes mounts GET /media/:type/:name. Only the local backend
// has anything to serve; S3 objects are addressed by their public URL.
func (h *Handler) RegisterMediaRoutes(r gin.IRouter) {
	r.GET(MediaPrefix+"/:type/:name", h.serve)
}

func (h *Handler) upload(c *gin.Context) {
	typ := normalizeType(c.Query("type"))
	if typ == "" {
		response.BadRequest(c, "invalid file type")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > MaxUploadSize {
		response.BadRequest(c, "file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		response.InternalError(c, err)
		return
	}

	name := buildFileName(fileHeader.Filename)
	key := typ + "/" + name
	contentType := detectContentType(fileHeader.Filename, head[:n], fileHeader.Header.Get("Content-Type"))

	url, err := h.backend.Save(c.Request.Context(), key, file, fileHeader.Size, contentType)
	if err != nil {
		h.logger.Error("upload failed", zap.String("key", key), zap.Error(err))
		response.InternalError(c, err)
		return
	}

	response.Created(c, gin.H{
		"url":     url,
		"name":    name,
		"storage": h.backend.Name(),
	})
}

func (h *Handler) delete(c *gin.Context) {
	typ := normalizeType(c.Param("type"))
	name := safeName(c.Param("name"))
	if typ == "" || name == "" {
		response.BadRequest(c, "invalid path")
		return
	}

	if err := h.backend.Delete(c.Request.Context(), typ+"/"+name); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) serve(c *gin.Context) {
	typ := normalizeType(c.Param("type"))
	name := safeName(c.Param("name"))
	if h.local == nil || typ == "" || name == "" {
		response.NotFound(c)
		return
	}

	path, err := h.local.Path(typ + "/" + name)
	if err != nil {
		response.NotFound(c)
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		response.NotFound(c)
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000")
	c.Header("X-Content-Type-Options", "nosniff")
	c.File(path)
}
