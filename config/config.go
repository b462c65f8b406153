package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is Groq's OpenAI-compatible chat completions URL.
const DefaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"

// DefaultModel is sent with every completion call unless AI_MODEL overrides it.
const DefaultModel = "llama-3.1-8b-instant"

// Config 应用配置
type Config struct {
	Port            string
	GroqAPIKey      string
	AIEndpoint      string
	AIModel         string
	UpstreamTimeout time.Duration
	Variant         models.SchemaVariant
	SchemaFile      string
	MetricsEnabled  bool
	MCPEnabled      bool
	TraceEnabled    bool
	TraceEndpoint   string
}

// Load 加载配置（从 .env 文件和环境变量）
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GroqAPIKey:      getEnv("GROQ_API_KEY", ""),
		AIEndpoint:      getEnv("AI_ENDPOINT", DefaultEndpoint),
		AIModel:         getEnv("AI_MODEL", DefaultModel),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		SchemaFile:      getEnv("SCHEMA_FILE", ""),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
		MCPEnabled:      getEnvBool("MCP_ENABLED", true),
		TraceEnabled:    getEnvBool("TRACE_ENABLED", false),
		TraceEndpoint:   getEnv("TRACE_ENDPOINT", ""),
	}

	variantName := strings.ToLower(getEnv("SCHEMA_VARIANT", models.VariantThemed))
	variant, ok := models.BuiltinVariant(variantName)
	if !ok {
		return nil, fmt.Errorf("unknown SCHEMA_VARIANT %q (expected %q or %q)",
			variantName, models.VariantThemed, models.VariantClassic)
	}
	cfg.Variant = variant

	if cfg.SchemaFile != "" {
		fileVariant, err := LoadSchemaVariant(cfg.SchemaFile)
		if err != nil {
			return nil, err
		}
		cfg.Variant = fileVariant
	}

	return cfg, nil
}

// getEnv 获取环境变量（带默认值）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool 获取布尔型环境变量
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	value = strings.ToLower(strings.TrimSpace(value))
	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration accepts Go durations ("45s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is not set; every generation will fail")
	}

	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be greater than 0")
	}

	if c.AIEndpoint == "" {
		return fmt.Errorf("AI_ENDPOINT is empty")
	}

	// endpoint pointing back at ourselves loops requests
	if strings.Contains(c.AIEndpoint, "localhost:"+c.Port) ||
		strings.Contains(c.AIEndpoint, "127.0.0.1:"+c.Port) {
		return fmt.Errorf("AI_ENDPOINT %s points at this server", c.AIEndpoint)
	}

	return nil
}
