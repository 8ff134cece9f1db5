// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrExtraction, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import "context"

// ContentStore provides read-only access to the markdown documents that
// back the blog. The backing data is bundled into the binary at build
// time and is immutable for the process lifetime, so implementations
// need no locking for concurrent reads.
type ContentStore interface {
	// List returns the filenames of every document in the store.
	List(ctx context.Context) ([]string, error)

	// Get returns the raw bytes of the named document.
	// Returns domain.ErrNotFound if the document does not exist.
	Get(ctx context.Context, name string) ([]byte, error)
}

// AssetStore provides read-only access to static assets (stylesheets,
// images, favicon). Same immutability guarantees as ContentStore.
type AssetStore interface {
	// Get returns the raw bytes of the named asset.
	// Returns domain.ErrNotFound if the asset does not exist.
	Get(ctx context.Context, name string) ([]byte, error)
}

// MarkdownRenderer converts markdown source into HTML under a fixed
// extension configuration. Implementations must be stateless: rendering
// the same input twice yields identical output.
type MarkdownRenderer interface {
	// Render converts markdown text to an HTML string.
	Render(markdown []byte) (string, error)
}
