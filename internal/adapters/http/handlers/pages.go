package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sphericalkat/website/internal/adapters/http/dto"
	"github.com/sphericalkat/website/internal/app"
	"github.com/sphericalkat/website/internal/platform/config"
	"github.com/sphericalkat/website/internal/platform/logging"
)

// ProcessInfo describes the running binary. It is rendered into the page
// footer, computed once at startup.
type ProcessInfo struct {
	// Path is the absolute path of the executable.
	Path string

	// Version is the Go runtime version the binary was built with.
	Version string
}

// PagesHandler serves the HTML pages of the site.
type PagesHandler struct {
	service *app.PostService
	tmpl    *template.Template
	site    config.SiteConfig
	proc    ProcessInfo
}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler(service *app.PostService, tmpl *template.Template, site config.SiteConfig, proc ProcessInfo) *PagesHandler {
	return &PagesHandler{
		service: service,
		tmpl:    tmpl,
		site:    site,
		proc:    proc,
	}
}

// pageData is the rendering context shared by all page templates.
type pageData struct {
	Title   string
	Author  string
	Year    string
	Path    string
	Version string

	// Posts is set on the blog index page.
	Posts []postEntry

	// Post is the rendered body on the post detail page.
	Post template.HTML

	// Status and Message are set on the error page.
	Status  string
	Message string
}

// postEntry is one listing entry on the blog index page. The blurb is
// pre-rendered HTML and must not be escaped again.
type postEntry struct {
	Date      string
	Title     string
	Slug      string
	BlurbHTML template.HTML
	Tags      []string
}

// base returns the common page context for the given page title.
func (h *PagesHandler) base(title string) pageData {
	return pageData{
		Title:   title,
		Author:  h.site.Author,
		Year:    strconv.Itoa(time.Now().Year()),
		Path:    h.proc.Path,
		Version: h.proc.Version,
	}
}

// Home handles GET / and renders the landing page.
func (h *PagesHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", h.base(h.site.Title))
}

// Blog handles GET /blog and renders the post listing, newest first.
func (h *PagesHandler) Blog(c *gin.Context) {
	summaries, err := h.service.BuildIndex(c.Request.Context())
	if err != nil {
		h.errorPage(c, err)
		return
	}

	data := h.base("Blog - " + h.site.Title)
	data.Posts = make([]postEntry, 0, len(summaries))

	for _, s := range summaries {
		data.Posts = append(data.Posts, postEntry{
			Date:      s.Date,
			Title:     s.Title,
			Slug:      s.Slug,
			BlurbHTML: template.HTML(s.BlurbHTML),
			Tags:      s.Tags,
		})
	}

	h.render(c, http.StatusOK, "blog.html", data)
}

// BlogPost handles GET /blog/:slug and renders a single post.
func (h *PagesHandler) BlogPost(c *gin.Context) {
	detail, err := h.service.Resolve(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.errorPage(c, err)
		return
	}

	data := h.base(detail.Title)
	data.Post = template.HTML(detail.BodyHTML)

	h.render(c, http.StatusOK, "post.html", data)
}

// errorPage renders the HTML error page for a domain error.
func (h *PagesHandler) errorPage(c *gin.Context, err error) {
	status := dto.StatusFor(err)

	data := h.base(h.site.Title)
	data.Status = strconv.Itoa(status) + " " + http.StatusText(status)
	data.Message = errorMessage(status)

	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("page request failed", "error", err.Error(), "path", c.Request.URL.Path)
	}

	h.render(c, status, "error.html", data)
}

// errorMessage picks the human-facing text for an error status. Internal
// detail never reaches the page.
func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "There's nothing here."
	case http.StatusBadRequest:
		return "That request didn't make sense."
	default:
		return "Something broke on our end."
	}
}

// render writes a page template to the response.
func (h *PagesHandler) render(c *gin.Context, status int, name string, data pageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)

	err := h.tmpl.ExecuteTemplate(c.Writer, name, data)
	if err != nil {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("rendering template", "template", name, "error", err.Error())
	}
}

// RegisterPageRoutes registers the HTML page routes on the engine root.
func (h *PagesHandler) RegisterPageRoutes(engine *gin.Engine) {
	engine.GET("/", h.Home)
	engine.GET("/blog", h.Blog)
	engine.GET("/blog/:slug", h.BlogPost)
}
