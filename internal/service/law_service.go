package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/search"
)

// LawService manages the legal article corpus behind retrieval
type LawService struct {
	retriever search.Retriever
	indexer   search.Indexer
}

// NewLawService creates a new law service
func NewLawService(retriever search.Retriever, indexer search.Indexer) *LawService {
	return &LawService{retriever: retriever, indexer: indexer}
}

// Ingest indexes a law passage so it becomes retrievable, returning its ID
func (s *LawService) Ingest(ctx context.Context, text, title string) (string, error) {
	id := uuid.New().String()
	metadata := map[string]any{}
	if title != "" {
		metadata["title"] = title
	}
	if err := s.indexer.Index(ctx, id, text, metadata); err != nil {
		return "", err
	}
	return id, nil
}

// Relevant returns the passages closest to the query, no LLM involved
func (s *LawService) Relevant(ctx context.Context, query string, k int) ([]domain.Passage, error) {
	return s.retriever.Search(ctx, query, k)
}
