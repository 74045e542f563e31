package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Legally backend
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Weaviate WeaviateConfig `mapstructure:"weaviate"`
	LLM      LLMConfig      `mapstructure:"llm"`
	RAG      RAGConfig      `mapstructure:"rag"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

// WeaviateConfig holds vector search backend configuration
type WeaviateConfig struct {
	Scheme string `mapstructure:"scheme"`
	Host   string `mapstructure:"host"`
	Class  string `mapstructure:"class"`
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	ChatModel      string `mapstructure:"chat_model"`
}

// RAGConfig holds consultation pipeline configuration
type RAGConfig struct {
	TopK                int     `mapstructure:"top_k"`
	MaxTokens           int     `mapstructure:"max_tokens"`
	FallbackReliability float64 `mapstructure:"fallback_reliability"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables (LEGALLY_AUTH_SECRET -> auth.secret)
	v.SetEnvPrefix("LEGALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The signing secret has no safe default
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret (LEGALLY_AUTH_SECRET) is required")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allow_origins", []string{"*"})

	v.SetDefault("database.path", "./data/legally.db")

	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", "15m")

	v.SetDefault("weaviate.scheme", "http")
	v.SetDefault("weaviate.host", "localhost:8081")
	v.SetDefault("weaviate.class", "LegalArticle")

	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.embedding_model", "text-embedding-3-small")
	v.SetDefault("llm.chat_model", "gpt-3.5-turbo")

	v.SetDefault("rag.top_k", 3)
	v.SetDefault("rag.max_tokens", 512)
	v.SetDefault("rag.fallback_reliability", 0.8)
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
