package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/llm"
	"github.com/legally-ai/legally/internal/search"
)

const consultPreamble = "You are a legal assistant. Use the following articles to answer the question."

// ConsultService answers legal questions by grounding an LLM completion
// in retrieved law passages.
type ConsultService struct {
	retriever           search.Retriever
	completer           llm.Completer
	topK                int
	maxTokens           int
	fallbackReliability float64
}

// NewConsultService creates a new consultation service
func NewConsultService(retriever search.Retriever, completer llm.Completer, topK, maxTokens int, fallbackReliability float64) *ConsultService {
	return &ConsultService{
		retriever:           retriever,
		completer:           completer,
		topK:                topK,
		maxTokens:           maxTokens,
		fallbackReliability: fallbackReliability,
	}
}

// Consult runs the retrieval-augmented pipeline for one question.
// Retrieval or completion failures are fatal to the request; nothing is
// retried or degraded.
func (s *ConsultService) Consult(ctx context.Context, message string) (*domain.ChatResponse, error) {
	passages, err := s.retriever.Search(ctx, message, s.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}

	prompt := composePrompt(message, passages)

	answer, err := s.completer.Complete(ctx, prompt, s.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	// Reliability is the raw distance of the closest passage. Smaller
	// means a closer match, so this is not a normalized confidence; the
	// frontend depends on the current scale.
	reliability := s.fallbackReliability
	sources := make([]string, 0, len(passages))
	for _, p := range passages {
		sources = append(sources, p.Text)
	}
	if len(passages) > 0 {
		reliability = passages[0].Distance
	}

	return &domain.ChatResponse{
		Answer:      answer,
		Reliability: reliability,
		Sources:     sources,
	}, nil
}

// composePrompt builds the grounding prompt: preamble, passages labeled
// [Article i] in retrieval order, then the literal question.
func composePrompt(message string, passages []domain.Passage) string {
	var b strings.Builder
	b.WriteString(consultPreamble)
	b.WriteString("\n\n")
	for i, p := range passages {
		fmt.Fprintf(&b, "[Article %d]: %s\n", i+1, p.Text)
	}
	fmt.Fprintf(&b, "\nQuestion: %s\nAnswer:", message)
	return b.String()
}
