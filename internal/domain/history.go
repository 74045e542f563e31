package domain

// HistoryEntry is a single interaction record. Callers may attach arbitrary
// fields; the store stamps username and timestamp on append.
type HistoryEntry map[string]any

// HistoryResponse wraps the per-user interaction log
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}
