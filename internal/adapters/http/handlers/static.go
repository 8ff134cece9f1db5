package handlers

import (
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sphericalkat/website/internal/adapters/http/dto"
	"github.com/sphericalkat/website/internal/domain"
	"github.com/sphericalkat/website/internal/ports"
)

// faviconContentType is the content type for the favicon route.
const faviconContentType = "image/x-icon"

// StaticHandler serves embedded static assets. The content type is derived
// from the file extension; assets without a recognizable extension are
// rejected with 400.
type StaticHandler struct {
	assets ports.AssetStore
}

// NewStaticHandler creates a new static asset handler.
func NewStaticHandler(assets ports.AssetStore) *StaticHandler {
	return &StaticHandler{
		assets: assets,
	}
}

// Serve handles GET /static/*filepath.
func (h *StaticHandler) Serve(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")

	data, err := h.assets.Get(c.Request.Context(), name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	contentType, err := contentTypeFor(name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// Favicon handles GET /favicon.ico.
func (h *StaticHandler) Favicon(c *gin.Context) {
	data, err := h.assets.Get(c.Request.Context(), "favicon.ico")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, faviconContentType, data)
}

// contentTypeFor resolves the content type of an asset from its extension.
func contentTypeFor(name string) (string, error) {
	ext := path.Ext(name)
	if ext == "" {
		return "", domain.NewContentTypeError(name, "")
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		return "", domain.NewContentTypeError(name, ext)
	}

	return contentType, nil
}

// RegisterStaticRoutes registers the asset routes on the engine root.
func (h *StaticHandler) RegisterStaticRoutes(engine *gin.Engine) {
	engine.GET("/static/*filepath", h.Serve)
	engine.GET("/favicon.ico", h.Favicon)
}
