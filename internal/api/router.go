package api

import (
	"github.com/gin-gonic/gin"
	authapi "github.com/legally-ai/legally/internal/api/auth"
	"github.com/legally-ai/legally/internal/api/chat"
	"github.com/legally-ai/legally/internal/api/document"
	"github.com/legally-ai/legally/internal/api/history"
	"github.com/legally-ai/legally/internal/api/law"
	"github.com/legally-ai/legally/internal/api/middleware"
	"github.com/legally-ai/legally/internal/service"
	"go.uber.org/zap"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	authService *service.AuthService,
	consultService *service.ConsultService,
	analysisService *service.AnalysisService,
	historyService *service.HistoryService,
	lawService *service.LawService,
	logger *zap.Logger,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authRequired := middleware.Auth(authService, logger)

	// Auth endpoints (register/login public, /auth/me guarded)
	authHandler := authapi.NewHandler(authService)
	authHandler.RegisterRoutes(r.Group("/auth"), authRequired)

	// Consultation (requires auth)
	chatHandler := chat.NewHandler(consultService)
	chatGroup := r.Group("/chat")
	chatGroup.Use(authRequired)
	chatHandler.RegisterRoutes(chatGroup)

	// Document analysis (requires auth)
	documentHandler := document.NewHandler(analysisService)
	documentGroup := r.Group("/document")
	documentGroup.Use(authRequired)
	documentHandler.RegisterRoutes(documentGroup)

	// Per-user interaction log (requires auth)
	historyHandler := history.NewHandler(historyService)
	historyGroup := r.Group("/history")
	historyGroup.Use(authRequired)
	historyHandler.RegisterRoutes(historyGroup)

	// Law corpus: public retrieval, guarded ingestion
	lawHandler := law.NewHandler(lawService)
	lawHandler.RegisterRoutes(r.Group("/laws"), authRequired)

	// Fixed sample graph for the frontend renderer
	r.GET("/graph", law.SampleGraph)

	return r
}
