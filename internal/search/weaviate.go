package search

import (
	"context"
	"fmt"

	"github.com/legally-ai/legally/internal/domain"
	weaviate "github.com/weaviate/weaviate-go-client/v5/weaviate"
	gql "github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
)

// WeaviateRetriever implements Retriever and Indexer against a Weaviate
// class holding legal article passages. Query embedding is delegated to
// the injected Embedder; Weaviate only stores and ranks vectors.
type WeaviateRetriever struct {
	client   *weaviate.Client
	class    string
	embedder Embedder
}

// NewWeaviateRetriever constructs a retriever for the given host and class
func NewWeaviateRetriever(scheme, host, class string, embedder Embedder) (*WeaviateRetriever, error) {
	cfg := weaviate.Config{Scheme: scheme, Host: host}
	cl, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}
	return &WeaviateRetriever{client: cl, class: class, embedder: embedder}, nil
}

// Search embeds the query and runs a nearVector search, returning up to k
// passages ordered closest first.
func (w *WeaviateRetriever) Search(ctx context.Context, query string, k int) ([]domain.Passage, error) {
	vec, err := w.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	nv := (&gql.NearVectorArgumentBuilder{}).WithVector(vec)

	resp, err := w.client.GraphQL().Get().
		WithClassName(w.class).
		WithNearVector(nv).
		WithLimit(k).
		WithFields(
			gql.Field{Name: "text"},
			gql.Field{Name: "_additional", Fields: []gql.Field{{Name: "distance"}}},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("weaviate search failed: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("weaviate graphql: %s", resp.Errors[0].Message)
	}

	getData, ok := resp.Data["Get"].(map[string]interface{})
	if !ok {
		return []domain.Passage{}, nil
	}
	raw, ok := getData[w.class].([]interface{})
	if !ok {
		return []domain.Passage{}, nil
	}

	passages := make([]domain.Passage, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		p := domain.Passage{}
		if text, ok := obj["text"].(string); ok {
			p.Text = text
		}
		if add, ok := obj["_additional"].(map[string]interface{}); ok {
			if d, ok := add["distance"].(float64); ok {
				p.Distance = d
			}
		}
		passages = append(passages, p)
	}

	return passages, nil
}

// Index embeds a passage and upserts it into the class
func (w *WeaviateRetriever) Index(ctx context.Context, id, text string, metadata map[string]any) error {
	vec, err := w.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to embed passage: %w", err)
	}

	props := map[string]interface{}{"text": text}
	for k, v := range metadata {
		props[k] = v
	}

	_, err = w.client.Data().Creator().
		WithClassName(w.class).
		WithID(id).
		WithProperties(props).
		WithVector(vec).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("weaviate upsert failed: %w", err)
	}
	return nil
}
