package document

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/service"
)

// Handler handles document analysis requests
type Handler struct {
	analysisService *service.AnalysisService
}

// NewHandler creates a new document handler
func NewHandler(analysisService *service.AnalysisService) *Handler {
	return &Handler{analysisService: analysisService}
}

// RegisterRoutes registers document routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/analyze", h.Analyze)
}

// Analyze checks an uploaded document against the law corpus
func (h *Handler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file upload is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.analysisService.Analyze(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, domain.ErrDecode) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
