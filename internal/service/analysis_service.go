package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/llm"
	"github.com/legally-ai/legally/internal/search"
)

const analysisPreamble = "You are a legal assistant. Assess whether the following document complies with the cited legislation. State the conclusion first, then the reasoning."

// maxQueryRunes bounds the document excerpt used as the retrieval query
const maxQueryRunes = 2000

// AnalysisService checks an uploaded document against the law corpus and
// links it to the matched articles in a node-link graph.
type AnalysisService struct {
	retriever           search.Retriever
	completer           llm.Completer
	topK                int
	maxTokens           int
	fallbackReliability float64
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(retriever search.Retriever, completer llm.Completer, topK, maxTokens int, fallbackReliability float64) *AnalysisService {
	return &AnalysisService{
		retriever:           retriever,
		completer:           completer,
		topK:                topK,
		maxTokens:           maxTokens,
		fallbackReliability: fallbackReliability,
	}
}

// Analyze decodes the upload as text, retrieves the articles closest to
// it and asks the LLM for a compliance assessment. Returns
// domain.ErrDecode for content that is not valid text.
func (s *AnalysisService) Analyze(ctx context.Context, data []byte) (*domain.AnalyzeResponse, error) {
	if !utf8.Valid(data) {
		return nil, domain.ErrDecode
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, domain.ErrDecode
	}

	passages, err := s.retriever.Search(ctx, excerpt(text), s.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}

	result, err := s.completer.Complete(ctx, analysisPrompt(text, passages), s.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	// Same convention as consultation: closest-passage distance, with
	// the fixed fallback when nothing matched.
	reliability := s.fallbackReliability
	if len(passages) > 0 {
		reliability = passages[0].Distance
	}

	graph := domain.NewGraph()
	graph.AddNode("Document")
	for i := range passages {
		graph.AddLink("Document", fmt.Sprintf("Article %d", i+1))
	}

	return &domain.AnalyzeResponse{
		Result:      result,
		Reliability: reliability,
		Graph:       graph,
	}, nil
}

func analysisPrompt(text string, passages []domain.Passage) string {
	var b strings.Builder
	b.WriteString(analysisPreamble)
	b.WriteString("\n\n")
	for i, p := range passages {
		fmt.Fprintf(&b, "[Article %d]: %s\n", i+1, p.Text)
	}
	fmt.Fprintf(&b, "\nDocument:\n%s\n\nAssessment:", text)
	return b.String()
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= maxQueryRunes {
		return text
	}
	return string(runes[:maxQueryRunes])
}
