package service

import (
	"context"
	"testing"

	"github.com/legally-ai/legally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndexer struct {
	lastID   string
	lastText string
	lastMeta map[string]any
}

func (f *fakeIndexer) Index(_ context.Context, id, text string, metadata map[string]any) error {
	f.lastID = id
	f.lastText = text
	f.lastMeta = metadata
	return nil
}

func TestLawIngest(t *testing.T) {
	indexer := &fakeIndexer{}
	svc := NewLawService(&fakeRetriever{}, indexer)

	id, err := svc.Ingest(context.Background(), "Article 5: all contracts require consent.", "Civil Code")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, indexer.lastID)
	assert.Equal(t, "Article 5: all contracts require consent.", indexer.lastText)
	assert.Equal(t, "Civil Code", indexer.lastMeta["title"])
}

func TestLawIngestOmitsEmptyTitle(t *testing.T) {
	indexer := &fakeIndexer{}
	svc := NewLawService(&fakeRetriever{}, indexer)

	_, err := svc.Ingest(context.Background(), "passage", "")
	require.NoError(t, err)
	assert.NotContains(t, indexer.lastMeta, "title")
}

func TestLawRelevantDelegatesToRetriever(t *testing.T) {
	retriever := &fakeRetriever{passages: []domain.Passage{{Text: "hit", Distance: 0.2}}}
	svc := NewLawService(retriever, &fakeIndexer{})

	passages, err := svc.Relevant(context.Background(), "contracts", 5)
	require.NoError(t, err)
	require.Len(t, passages, 1)
	assert.Equal(t, "hit", passages[0].Text)
	assert.Equal(t, 5, retriever.lastK)
	assert.Equal(t, "contracts", retriever.lastQ)
}
