// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/sphericalkat/website/internal/domain"
	"github.com/sphericalkat/website/internal/markdown"
	"github.com/sphericalkat/website/internal/ports"
)

// markdownExt is the filename extension of post documents; the slug is
// the filename with this suffix removed.
const markdownExt = ".md"

// PostService orchestrates the blog use cases: building the sorted post
// index for the listing page and resolving a single post for detail
// display. It depends on port interfaces, not concrete implementations.
//
// The service holds no mutable state, so one instance serves all
// requests concurrently. Nothing is cached between calls: every request
// extracts and renders from the immutable content bundle.
type PostService struct {
	store    ports.ContentStore
	renderer ports.MarkdownRenderer
	logger   *slog.Logger
}

// PostServiceConfig contains configuration for the post service.
type PostServiceConfig struct {
	Store    ports.ContentStore
	Renderer ports.MarkdownRenderer
	Logger   *slog.Logger
}

// NewPostService creates a new post service with the provided dependencies.
func NewPostService(cfg PostServiceConfig) *PostService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PostService{
		store:    cfg.Store,
		renderer: cfg.Renderer,
		logger:   logger.With(slog.String("component", "app.PostService")),
	}
}

// dated pairs a summary with its parsed publication date for sorting.
type dated struct {
	summary domain.PostSummary
	ts      time.Time
}

// BuildIndex produces the listing-page view of every post, sorted by
// publication date descending. Any malformed document fails the whole
// index: a bad post is a deploy-time bug and partial listings would
// hide it.
func (s *PostService) BuildIndex(ctx context.Context) ([]domain.PostSummary, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	entries, err := ParallelMap(ctx, names, s.buildEntry)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build post index", slog.Any("error", err))
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ts.After(entries[j].ts)
	})

	summaries := make([]domain.PostSummary, len(entries))
	for i, e := range entries {
		summaries[i] = e.summary
	}

	s.logger.DebugContext(ctx, "built post index", slog.Int("posts", len(summaries)))

	return summaries, nil
}

// buildEntry loads one document and assembles its listing entry:
// extraction, blurb rendering, and date parsing.
func (s *PostService) buildEntry(ctx context.Context, name string) (dated, error) {
	data, err := s.store.Get(ctx, name)
	if err != nil {
		return dated{}, fmt.Errorf("loading %s: %w", name, err)
	}

	fm, _, err := markdown.ExtractFrontMatter(name, data)
	if err != nil {
		return dated{}, err
	}

	ts, err := fm.PublishedAt()
	if err != nil {
		return dated{}, err
	}

	// The metadata syntax quotes titles and blurbs; the quoting must not
	// leak into rendered text.
	title := strings.ReplaceAll(fm.Title, "'", "")
	blurb := strings.ReplaceAll(fm.Blurb, `"`, "")

	blurbHTML, err := s.renderer.Render([]byte(blurb))
	if err != nil {
		return dated{}, fmt.Errorf("rendering blurb of %s: %w", name, err)
	}

	return dated{
		summary: domain.PostSummary{
			Date:      fm.Date,
			Title:     title,
			Slug:      strings.TrimSuffix(name, markdownExt),
			BlurbHTML: blurbHTML,
			Tags:      fm.Tags,
		},
		ts: ts,
	}, nil
}

// Resolve locates the document for the given slug and renders it for
// detail display. Returns domain.ErrNotFound when no document matches.
func (s *PostService) Resolve(ctx context.Context, slug string) (*domain.PostDetail, error) {
	if slug == "" {
		return nil, fmt.Errorf("validating input: %w", domain.NewValidationError("slug", "cannot be empty"))
	}

	name := slug + markdownExt

	data, err := s.store.Get(ctx, name)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewNotFoundError("post", slug)
		}

		return nil, fmt.Errorf("loading %s: %w", name, err)
	}

	fm, body, err := markdown.ExtractFrontMatter(name, data)
	if err != nil {
		return nil, err
	}

	bodyHTML, err := s.renderer.Render(body)
	if err != nil {
		return nil, fmt.Errorf("rendering body of %s: %w", name, err)
	}

	s.logger.DebugContext(ctx, "resolved post",
		slog.String("slug", slug),
		slog.String("title", fm.Title),
	)

	return &domain.PostDetail{
		Title:    fm.Title,
		BodyHTML: bodyHTML,
	}, nil
}

// Name implements ports.HealthChecker.
func (s *PostService) Name() string {
	return "content"
}

// Check implements ports.HealthChecker by building the full index, which
// surfaces malformed bundle content through the readiness probe instead
// of the first unlucky listing request.
func (s *PostService) Check(ctx context.Context) error {
	_, err := s.BuildIndex(ctx)
	return err
}
