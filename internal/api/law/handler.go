package law

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/service"
)

// Handler handles law corpus and graph requests
type Handler struct {
	lawService *service.LawService
}

// NewHandler creates a new law handler
func NewHandler(lawService *service.LawService) *Handler {
	return &Handler{lawService: lawService}
}

// RegisterRoutes registers law routes. Retrieval is public; ingestion
// requires authentication.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc) {
	r.GET("", h.Relevant)
	r.POST("", authRequired, h.Ingest)
}

// IngestRequest is the request to index a law passage
type IngestRequest struct {
	Text  string `json:"text" binding:"required"`
	Title string `json:"title"`
}

// Relevant returns the passages closest to the query
func (h *Handler) Relevant(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "query parameter is required"})
		return
	}

	k := 3
	if raw := c.Query("k"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			k = parsed
		}
	}

	passages, err := h.lawService.Relevant(c.Request.Context(), query, k)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"laws": passages})
}

// Ingest indexes a law passage
func (h *Handler) Ingest(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	id, err := h.lawService.Ingest(c.Request.Context(), req.Text, req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// SampleGraph returns the fixed two-node demonstration graph used by the
// frontend's graph renderer.
func SampleGraph(c *gin.Context) {
	g := domain.NewGraph()
	g.AddLink("A", "B")
	c.JSON(http.StatusOK, g)
}
