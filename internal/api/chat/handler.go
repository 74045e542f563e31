package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/service"
)

// Handler handles consultation requests
type Handler struct {
	consultService *service.ConsultService
}

// NewHandler creates a new chat handler
func NewHandler(consultService *service.ConsultService) *Handler {
	return &Handler{consultService: consultService}
}

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/consult", h.Consult)
}

// Consult answers a legal question through the retrieval pipeline
func (h *Handler) Consult(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.consultService.Consult(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
