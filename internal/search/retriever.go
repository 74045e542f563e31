package search

import (
	"context"

	"github.com/legally-ai/legally/internal/domain"
)

// Embedder exposes text embedding capability for the search service
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever finds the passages most relevant to a free-text query.
// Results come back best match first; lower distance is closer. The
// backend may return fewer than k results when the corpus is smaller.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]domain.Passage, error)
}

// Indexer stores a passage so later searches can find it
type Indexer interface {
	Index(ctx context.Context, id, text string, metadata map[string]any) error
}
