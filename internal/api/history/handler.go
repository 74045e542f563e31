package history

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legally-ai/legally/internal/api/middleware"
	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/service"
)

// Handler handles interaction-history requests
type Handler struct {
	historyService *service.HistoryService
}

// NewHandler creates a new history handler
func NewHandler(historyService *service.HistoryService) *Handler {
	return &Handler{historyService: historyService}
}

// RegisterRoutes registers history routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.List)
	r.POST("", h.Append)
}

// List returns the caller's interaction log in insertion order
func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	entries, err := h.historyService.List(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.HistoryResponse{History: entries})
}

// Append stores an entry with arbitrary caller-supplied fields
func (h *Handler) Append(c *gin.Context) {
	entry := domain.HistoryEntry{}
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.historyService.Append(user.Username, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
