package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/legally-ai/legally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRetriever struct {
	passages []domain.Passage
	err      error
	lastK    int
	lastQ    string
}

func (f *fakeRetriever) Search(_ context.Context, query string, k int) ([]domain.Passage, error) {
	f.lastQ = query
	f.lastK = k
	if f.err != nil {
		return nil, f.err
	}
	return f.passages, nil
}

type fakeCompleter struct {
	answer     string
	err        error
	lastPrompt string
	lastMax    int
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.lastPrompt = prompt
	f.lastMax = maxTokens
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestConsultReliabilityIsClosestDistance(t *testing.T) {
	retriever := &fakeRetriever{passages: []domain.Passage{
		{Text: "Article text about contracts", Distance: 0.3},
	}}
	completer := &fakeCompleter{answer: "You may terminate the contract."}
	svc := NewConsultService(retriever, completer, 3, 512, 0.8)

	resp, err := svc.Consult(context.Background(), "Can I terminate?")
	require.NoError(t, err)

	assert.Equal(t, "You may terminate the contract.", resp.Answer)
	assert.Equal(t, 0.3, resp.Reliability)
	assert.Equal(t, []string{"Article text about contracts"}, resp.Sources)
	assert.Equal(t, 3, retriever.lastK)
	assert.Equal(t, 512, completer.lastMax)
}

func TestConsultFallbackReliabilityWithNoPassages(t *testing.T) {
	retriever := &fakeRetriever{passages: []domain.Passage{}}
	completer := &fakeCompleter{answer: "I have no grounding for this."}
	svc := NewConsultService(retriever, completer, 3, 512, 0.8)

	resp, err := svc.Consult(context.Background(), "Obscure question")
	require.NoError(t, err)

	assert.Equal(t, 0.8, resp.Reliability)
	assert.Equal(t, []string{}, resp.Sources)
}

func TestConsultSourcesKeepRetrievalOrder(t *testing.T) {
	retriever := &fakeRetriever{passages: []domain.Passage{
		{Text: "closest", Distance: 0.1},
		{Text: "middle", Distance: 0.4},
		{Text: "farthest", Distance: 0.9},
	}}
	completer := &fakeCompleter{answer: "ok"}
	svc := NewConsultService(retriever, completer, 3, 512, 0.8)

	resp, err := svc.Consult(context.Background(), "q")
	require.NoError(t, err)

	assert.Equal(t, []string{"closest", "middle", "farthest"}, resp.Sources)
	assert.Equal(t, 0.1, resp.Reliability)
}

func TestConsultPromptComposition(t *testing.T) {
	retriever := &fakeRetriever{passages: []domain.Passage{
		{Text: "first passage", Distance: 0.2},
		{Text: "second passage", Distance: 0.5},
	}}
	completer := &fakeCompleter{answer: "ok"}
	svc := NewConsultService(retriever, completer, 3, 512, 0.8)

	_, err := svc.Consult(context.Background(), "What does the law say?")
	require.NoError(t, err)

	prompt := completer.lastPrompt
	assert.True(t, strings.HasPrefix(prompt, consultPreamble))
	assert.Contains(t, prompt, "[Article 1]: first passage\n")
	assert.Contains(t, prompt, "[Article 2]: second passage\n")
	assert.True(t, strings.HasSuffix(prompt, "\nQuestion: What does the law say?\nAnswer:"))
	assert.Less(t, strings.Index(prompt, "[Article 1]"), strings.Index(prompt, "[Article 2]"))
}

func TestConsultRetrievalFailurePropagates(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("backend unreachable")}
	svc := NewConsultService(retriever, &fakeCompleter{answer: "ok"}, 3, 512, 0.8)

	_, err := svc.Consult(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retrieval failed")
}

func TestConsultCompletionFailurePropagates(t *testing.T) {
	retriever := &fakeRetriever{passages: []domain.Passage{{Text: "p", Distance: 0.2}}}
	completer := &fakeCompleter{err: errors.New("rate limited")}
	svc := NewConsultService(retriever, completer, 3, 512, 0.8)

	_, err := svc.Consult(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion failed")
}
