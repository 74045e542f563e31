package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/legally-ai/legally/internal/api"
	"github.com/legally-ai/legally/internal/auth"
	"github.com/legally-ai/legally/internal/config"
	"github.com/legally-ai/legally/internal/llm"
	"github.com/legally-ai/legally/internal/repository"
	"github.com/legally-ai/legally/internal/search"
	"github.com/legally-ai/legally/internal/service"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (users and per-user history)
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize external collaborators: LLM provider and vector search
	llmClient := llm.NewOpenAIClient(
		cfg.LLM.BaseURL,
		cfg.LLM.APIKey,
		cfg.LLM.ChatModel,
		cfg.LLM.EmbeddingModel,
	)

	retriever, err := search.NewWeaviateRetriever(
		cfg.Weaviate.Scheme,
		cfg.Weaviate.Host,
		cfg.Weaviate.Class,
		llmClient,
	)
	if err != nil {
		logger.Fatal("Failed to initialize retriever", zap.Error(err))
	}

	// Initialize services
	tokenService := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	consultService := service.NewConsultService(
		retriever,
		llmClient,
		cfg.RAG.TopK,
		cfg.RAG.MaxTokens,
		cfg.RAG.FallbackReliability,
	)
	analysisService := service.NewAnalysisService(
		retriever,
		llmClient,
		cfg.RAG.TopK,
		cfg.RAG.MaxTokens,
		cfg.RAG.FallbackReliability,
	)
	historyService := service.NewHistoryService(historyRepo)
	lawService := service.NewLawService(retriever, retriever)

	// Setup router
	router := api.SetupRouter(
		authService,
		consultService,
		analysisService,
		historyService,
		lawService,
		logger,
		api.RouterConfig{AllowOrigins: cfg.Server.AllowOrigins},
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting Legally server",
			zap.String("address", cfg.Address()),
			zap.String("weaviate_host", cfg.Weaviate.Host),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
