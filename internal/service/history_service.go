package service

import (
	"time"

	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/repository"
)

// HistoryService manages the append-only per-user interaction log
type HistoryService struct {
	historyRepo *repository.HistoryRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(historyRepo *repository.HistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// Append stamps the entry with the username and the current UTC time and
// stores it. Entry shape is not validated.
func (s *HistoryService) Append(username string, entry domain.HistoryEntry) error {
	return s.historyRepo.Append(username, entry, time.Now().UTC())
}

// List returns all entries for a user in insertion order
func (s *HistoryService) List(username string) ([]domain.HistoryEntry, error) {
	return s.historyRepo.ListByUser(username)
}
