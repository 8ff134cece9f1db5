package benchmark

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sphericalkat/website/internal/adapters/content"
	"github.com/sphericalkat/website/internal/app"
	"github.com/sphericalkat/website/internal/markdown"
)

// setupPostService wires the post service over the real embedded bundle,
// matching what the server does at startup.
func setupPostService(b *testing.B) *app.PostService {
	b.Helper()

	store, err := content.New(content.PostsFS(), "post")
	if err != nil {
		b.Fatalf("loading post bundle: %v", err)
	}

	return app.NewPostService(app.PostServiceConfig{
		Store:    store,
		Renderer: markdown.NewRenderer(markdown.DefaultOptions()),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// BenchmarkBuildIndex measures a full listing build: every post's front
// matter extracted and its blurb rendered. This runs on each /blog request.
func BenchmarkBuildIndex(b *testing.B) {
	service := setupPostService(b)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := service.BuildIndex(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolve measures a single post render, the /blog/:slug hot path.
func BenchmarkResolve(b *testing.B) {
	service := setupPostService(b)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := service.Resolve(ctx, "hello-world"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMarkdownRender isolates the goldmark conversion from the
// extraction and sorting around it.
func BenchmarkMarkdownRender(b *testing.B) {
	renderer := markdown.NewRenderer(markdown.DefaultOptions())
	doc := []byte("# Heading\n\nSome *emphasis*, a [link](https://example.com), and a list:\n\n- one\n- two\n- three\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := renderer.Render(doc); err != nil {
			b.Fatal(err)
		}
	}
}
