package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphericalkat/website/internal/adapters/content"
	"github.com/sphericalkat/website/internal/adapters/http/web"
	"github.com/sphericalkat/website/internal/app"
	"github.com/sphericalkat/website/internal/markdown"
	"github.com/sphericalkat/website/internal/platform/config"
)

func testPost(title, date, blurb, body string) []byte {
	return fmt.Appendf(nil,
		"---\ntitle: %q\ntags: [test]\ndate: %q\nblurb: %q\n---\n%s",
		title, date, blurb, body)
}

func testPostService(t *testing.T, files map[string][]byte) *app.PostService {
	t.Helper()

	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: data}
	}

	store, err := content.New(fsys, "post")
	require.NoError(t, err)

	return app.NewPostService(app.PostServiceConfig{
		Store:    store,
		Renderer: markdown.NewRenderer(markdown.DefaultOptions()),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func testPagesRouter(t *testing.T, files map[string][]byte) *gin.Engine {
	t.Helper()

	tmpl, err := web.Templates()
	require.NoError(t, err)

	handler := NewPagesHandler(
		testPostService(t, files),
		tmpl,
		config.SiteConfig{Title: "testsite", Author: "Test Author"},
		ProcessInfo{Path: "/usr/local/bin/website", Version: "go1.25"},
	)

	router := gin.New()
	handler.RegisterPageRoutes(router)

	return router
}

func TestPagesHandler_Home(t *testing.T) {
	router := testPagesRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "<title>testsite</title>")
	assert.Contains(t, body, "Test Author")
	assert.Contains(t, body, "/usr/local/bin/website")
	assert.Contains(t, body, "go1.25")
	assert.Contains(t, body, strconv.Itoa(time.Now().Year()))
}

func TestPagesHandler_Blog(t *testing.T) {
	router := testPagesRouter(t, map[string][]byte{
		"older.md": testPost("Older Post", "2021-01-01", "an *old* one", "body"),
		"newer.md": testPost("Newer Post", "2023-05-20", "a new one", "body"),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<title>Blog - testsite</title>")
	assert.Contains(t, body, `href="/blog/newer"`)
	assert.Contains(t, body, `href="/blog/older"`)

	// Newest first
	assert.Less(t,
		strings.Index(body, "Newer Post"), strings.Index(body, "Older Post"),
		"posts must be listed newest first")

	// Blurb HTML must not be escaped
	assert.Contains(t, body, "<em>old</em>")
}

func TestPagesHandler_Blog_EmptyBundle(t *testing.T) {
	router := testPagesRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nothing here yet")
}

func TestPagesHandler_Blog_MalformedBundle(t *testing.T) {
	router := testPagesRouter(t, map[string][]byte{
		"good.md": testPost("Good", "2021-01-01", "fine", "body"),
		"bad.md":  []byte("not a post at all"),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "500 Internal Server Error")
	// Internal detail stays off the page
	assert.NotContains(t, w.Body.String(), "bad.md")
}

func TestPagesHandler_BlogPost(t *testing.T) {
	router := testPagesRouter(t, map[string][]byte{
		"hello.md": testPost("Hello", "2021-01-01", "hi", "# World"),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog/hello", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<title>Hello</title>")
	assert.Contains(t, body, `<h1 id="#world">World</h1>`)
}

func TestPagesHandler_BlogPost_NotFound(t *testing.T) {
	router := testPagesRouter(t, map[string][]byte{
		"hello.md": testPost("Hello", "2021-01-01", "hi", "body"),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404 Not Found")
	assert.Contains(t, w.Body.String(), "nothing here")
}
