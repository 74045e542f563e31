package service

import (
	"context"
	"strings"
	"testing"

	"github.com/legally-ai/legally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRejectsNonText(t *testing.T) {
	svc := NewAnalysisService(&fakeRetriever{}, &fakeCompleter{}, 3, 512, 0.8)

	_, err := svc.Analyze(context.Background(), []byte{0xff, 0xfe, 0x00, 0x81})
	assert.ErrorIs(t, err, domain.ErrDecode)

	_, err = svc.Analyze(context.Background(), []byte("   \n\t  "))
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestAnalyzeLinksDocumentToMatchedArticles(t *testing.T) {
	retriever := &fakeRetriever{passages: []domain.Passage{
		{Text: "labor code article", Distance: 0.25},
		{Text: "tax code article", Distance: 0.6},
	}}
	completer := &fakeCompleter{answer: "Document complies with legislation."}
	svc := NewAnalysisService(retriever, completer, 3, 512, 0.8)

	resp, err := svc.Analyze(context.Background(), []byte("employment agreement text"))
	require.NoError(t, err)

	assert.Equal(t, "Document complies with legislation.", resp.Result)
	assert.Equal(t, 0.25, resp.Reliability)

	require.NotNil(t, resp.Graph)
	assert.Len(t, resp.Graph.Nodes, 3)
	assert.Len(t, resp.Graph.Links, 2)
	assert.Equal(t, "Document", resp.Graph.Nodes[0].ID)
	assert.Equal(t, domain.Link{Source: "Document", Target: "Article 1"}, resp.Graph.Links[0])
	assert.Equal(t, domain.Link{Source: "Document", Target: "Article 2"}, resp.Graph.Links[1])
}

func TestAnalyzeFallbackReliability(t *testing.T) {
	svc := NewAnalysisService(&fakeRetriever{}, &fakeCompleter{answer: "No matching law found."}, 3, 512, 0.8)

	resp, err := svc.Analyze(context.Background(), []byte("some document"))
	require.NoError(t, err)

	assert.Equal(t, 0.8, resp.Reliability)
	assert.Len(t, resp.Graph.Nodes, 1)
	assert.Empty(t, resp.Graph.Links)
}

func TestAnalyzePromptIncludesDocumentAndArticles(t *testing.T) {
	retriever := &fakeRetriever{passages: []domain.Passage{{Text: "cited article", Distance: 0.4}}}
	completer := &fakeCompleter{answer: "ok"}
	svc := NewAnalysisService(retriever, completer, 3, 512, 0.8)

	_, err := svc.Analyze(context.Background(), []byte("the document body"))
	require.NoError(t, err)

	prompt := completer.lastPrompt
	assert.True(t, strings.HasPrefix(prompt, analysisPreamble))
	assert.Contains(t, prompt, "[Article 1]: cited article\n")
	assert.Contains(t, prompt, "Document:\nthe document body")
	assert.True(t, strings.HasSuffix(prompt, "Assessment:"))
}

func TestAnalyzeQueryExcerptIsBounded(t *testing.T) {
	retriever := &fakeRetriever{}
	svc := NewAnalysisService(retriever, &fakeCompleter{answer: "ok"}, 3, 512, 0.8)

	long := strings.Repeat("a", 3*maxQueryRunes)
	_, err := svc.Analyze(context.Background(), []byte(long))
	require.NoError(t, err)

	assert.Len(t, []rune(retriever.lastQ), maxQueryRunes)
}
