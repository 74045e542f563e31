package domain

// AnalyzeResponse is the response from document analysis
type AnalyzeResponse struct {
	Result      string  `json:"result"`
	Reliability float64 `json:"reliability"`
	Graph       *Graph  `json:"graph,omitempty"`
}
