package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sphericalkat/website/internal/adapters/http/dto"
	"github.com/sphericalkat/website/internal/app"
	"github.com/sphericalkat/website/internal/domain"
)

// PostsHandler exposes the post index and post details as a JSON API.
type PostsHandler struct {
	service *app.PostService
}

// NewPostsHandler creates a new posts API handler.
func NewPostsHandler(service *app.PostService) *PostsHandler {
	return &PostsHandler{
		service: service,
	}
}

// PostSummaryResponse is the HTTP response structure for one index entry.
type PostSummaryResponse struct {
	Date      string   `json:"date"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	BlurbHTML string   `json:"blurbHtml"`
	Tags      []string `json:"tags,omitempty"`
}

// PostDetailResponse is the HTTP response structure for a full post.
type PostDetailResponse struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	BodyHTML string `json:"bodyHtml"`
}

// toSummaryResponse converts a domain summary to an HTTP response.
func toSummaryResponse(s domain.PostSummary) PostSummaryResponse {
	return PostSummaryResponse{
		Date:      s.Date,
		Title:     s.Title,
		Slug:      s.Slug,
		BlurbHTML: s.BlurbHTML,
		Tags:      s.Tags,
	}
}

// ListPosts handles GET /api/v1/posts
// Returns the post index sorted newest first, paginated by cursor.
//
// @Summary List posts
// @Description Returns post summaries sorted by publication date descending
// @Tags posts
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.PaginatedResponse[PostSummaryResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/posts [get]
func (h *PostsHandler) ListPosts(c *gin.Context) {
	var req dto.PaginationRequest

	err := dto.BindQueryAndValidate(c, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeValidation,
			err.Error(),
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	summaries, err := h.service.BuildIndex(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	start, err := cursorOffset(&req, summaries)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"invalid pagination cursor",
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	limit := req.GetLimit()

	// One extra item signals whether another page exists.
	end := start + limit + 1
	if end > len(summaries) {
		end = len(summaries)
	}

	page := make([]PostSummaryResponse, 0, end-start)
	for _, s := range summaries[start:end] {
		page = append(page, toSummaryResponse(s))
	}

	resp := dto.NewPaginatedResponse(page, limit, func(r PostSummaryResponse) *dto.CursorData {
		return dto.NewCursor("date", r.Date, r.Slug)
	})

	c.JSON(http.StatusOK, resp)
}

// cursorOffset returns the index of the first item after the request cursor.
// The slug recorded in the cursor anchors the position; date alone is not
// unique.
func cursorOffset(req *dto.PaginationRequest, summaries []domain.PostSummary) (int, error) {
	cursor, err := req.DecodeCursor()
	if err != nil {
		if errors.Is(err, dto.ErrNoCursor) {
			return 0, nil
		}

		return 0, err
	}

	for i, s := range summaries {
		if s.Slug == cursor.ID {
			return i + 1, nil
		}
	}

	// A cursor pointing at a post that no longer exists restarts from the
	// beginning rather than failing the request.
	return 0, nil
}

// GetPost handles GET /api/v1/posts/:slug
// Returns the rendered body and title of one post.
//
// @Summary Get a post by slug
// @Description Fetches a single post with its body rendered to HTML
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} PostDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/posts/{slug} [get]
func (h *PostsHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.service.Resolve(c.Request.Context(), slug)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostDetailResponse{
		Title:    detail.Title,
		Slug:     slug,
		BodyHTML: detail.BodyHTML,
	})
}

// RegisterPostRoutes registers the post API routes on the given router group.
func (h *PostsHandler) RegisterPostRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", h.ListPosts)
	posts.GET("/:slug", h.GetPost)
}
