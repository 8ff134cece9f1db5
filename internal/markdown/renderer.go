package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultAnchorPrefix is prepended to generated heading anchor ids.
const DefaultAnchorPrefix = "#"

// Options configures the renderer. The extension set itself is fixed;
// only the anchor prefix and the optional code highlighting step vary.
type Options struct {
	// AnchorPrefix is prepended to auto-generated heading ids.
	AnchorPrefix string

	// Highlight enables server-side syntax highlighting of fenced code
	// blocks. Off by default; when off, code blocks pass through as
	// plain <pre><code> with the language class intact.
	Highlight bool

	// ChromaStyle names the chroma style used when Highlight is on.
	ChromaStyle string
}

// DefaultOptions returns the canonical render configuration.
func DefaultOptions() Options {
	return Options{
		AnchorPrefix: DefaultAnchorPrefix,
		ChromaStyle:  "monokai",
	}
}

// Renderer converts markdown into HTML with a fixed extension set:
// tables, strikethrough, autolinks, task lists, and auto heading ids.
// Raw HTML passes through unsanitized. That is deliberate: posts are
// authored by the site owner, and embedded third-party snippets (gists)
// only work with passthrough enabled.
//
// The renderer is stateless apart from its engine configuration, so a
// single instance is safe for concurrent use across requests.
type Renderer struct {
	md           goldmark.Markdown
	anchorPrefix string
}

// NewRenderer builds a renderer from the given options.
func NewRenderer(opts Options) *Renderer {
	exts := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
		extension.TaskList,
	}

	if opts.Highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.ChromaStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &Renderer{
		md:           md,
		anchorPrefix: opts.AnchorPrefix,
	}
}

// Render converts markdown text to an HTML string. Each call parses
// with a fresh context so heading-id uniqueness is scoped to one
// document and no state leaks between renders.
func (r *Renderer) Render(markdown []byte) (string, error) {
	ctx := parser.NewContext(parser.WithIDs(newPrefixedIDs(r.anchorPrefix)))

	var buf bytes.Buffer
	if err := r.md.Convert(markdown, &buf, parser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return buf.String(), nil
}

// prefixedIDs generates heading anchor ids from heading text, prepending
// a fixed prefix and de-duplicating within a single document.
type prefixedIDs struct {
	prefix string
	used   map[string]bool
}

func newPrefixedIDs(prefix string) parser.IDs {
	return &prefixedIDs{
		prefix: prefix,
		used:   map[string]bool{},
	}
}

// Generate implements parser.IDs.
func (p *prefixedIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	slug := slugify(value)
	if len(slug) == 0 {
		slug = "heading"
	}

	candidate := p.prefix + slug
	if !p.used[candidate] {
		p.used[candidate] = true
		return []byte(candidate)
	}

	for i := 1; ; i++ {
		numbered := fmt.Sprintf("%s-%d", candidate, i)
		if !p.used[numbered] {
			p.used[numbered] = true
			return []byte(numbered)
		}
	}
}

// Put implements parser.IDs, reserving explicitly assigned ids.
func (p *prefixedIDs) Put(value []byte) {
	p.used[string(value)] = true
}

// slugify lowercases heading text and collapses runs of non-alphanumeric
// characters into single dashes.
func slugify(value []byte) string {
	var b strings.Builder
	dash := false

	for _, r := range strings.ToLower(string(value)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}

	return b.String()
}
