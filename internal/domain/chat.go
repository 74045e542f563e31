package domain

// Passage is a retrieved corpus fragment with its similarity distance.
// Lower distance means a closer match.
type Passage struct {
	Text     string  `json:"text"`
	Distance float64 `json:"distance"`
}

// ChatRequest is the request to the consultation endpoint
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the response from the consultation pipeline
type ChatResponse struct {
	Answer      string   `json:"answer"`
	Reliability float64  `json:"reliability"`
	Sources     []string `json:"sources"`
}
