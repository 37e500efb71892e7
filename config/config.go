package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Retail analytics specifics
	DataAPI  DataAPIConfig
	Database DatabaseConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Rate limiting for the chat endpoint
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DataAPIConfig points the chat service at the aggregation API.
// Port is where cmd/dataapi listens.
type DataAPIConfig struct {
	BaseURL string
	Timeout string
	Port    int
}

// DatabaseConfig locates the SQLite file served by the aggregation API and
// the CSV it is loaded from.
type DatabaseConfig struct {
	Path    string
	CSVPath string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string
}

// ProviderConfig holds configuration for a single LLM provider.
// Model serves intent extraction, ResponseModel serves answer rendering and
// falls back to Model when empty.
type ProviderConfig struct {
	Name          string `mapstructure:"name"`
	Enabled       bool   `mapstructure:"enabled"`
	Priority      int    `mapstructure:"priority"`
	APIKey        string `mapstructure:"api_key"`
	BaseURL       string `mapstructure:"base_url"`
	Model         string `mapstructure:"model"`
	ResponseModel string `mapstructure:"response_model"`
	Timeout       string `mapstructure:"timeout"`
}

type RateLimitConfig struct {
	ChatPerMin int
}

const (
	defaultIntentModel   = "gemini-2.5-flash"
	defaultResponseModel = "gemini-3-flash-preview"
)

// Load loads configuration using Viper.
// A .env file in the working directory is applied first if present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Data API
	cfg.DataAPI.BaseURL = viper.GetString("data_api.base_url")
	cfg.DataAPI.Timeout = viper.GetString("data_api.timeout")
	cfg.DataAPI.Port = viper.GetInt("data_api.port")
	if baseURL := viper.GetString("retail_api_base_url"); baseURL != "" {
		cfg.DataAPI.BaseURL = baseURL
	}
	cfg.DataAPI.BaseURL = strings.TrimRight(cfg.DataAPI.BaseURL, "/")

	// Database
	cfg.Database.Path = viper.GetString("database.path")
	cfg.Database.CSVPath = viper.GetString("database.csv_path")
	if dbPath := viper.GetString("retail_db_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if csvPath := viper.GetString("retail_csv_path"); csvPath != "" {
		cfg.Database.CSVPath = csvPath
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if err := viper.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
		return nil, fmt.Errorf("error decoding llm.providers: %w", err)
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(cfg.LLM.Providers[i].APIKey)
	}

	// A bare GEMINI_API_KEY is enough to run the assistant.
	if len(cfg.LLM.Providers) == 0 {
		if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:          "gemini",
				Enabled:       true,
				Priority:      1,
				APIKey:        geminiKey,
				Model:         viper.GetString("gemini_model_intent"),
				ResponseModel: viper.GetString("gemini_model_response"),
				Timeout:       "30s",
			})
		}
	}

	// Rate limiting
	cfg.RateLimit.ChatPerMin = viper.GetInt("rate_limit.chat_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("data_api.base_url", "http://127.0.0.1:5000")
	viper.SetDefault("data_api.timeout", "10s")
	viper.SetDefault("data_api.port", 5000)
	viper.SetDefault("database.path", "data/retail.db")
	viper.SetDefault("database.csv_path", "data/Retail_Transaction_Dataset.csv")

	viper.SetDefault("gemini_model_intent", defaultIntentModel)
	viper.SetDefault("gemini_model_response", defaultResponseModel)

	viper.SetDefault("rate_limit.chat_per_min", 30)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// ValidateLLMConfig validates the LLM configuration. Only the chat service
// needs providers, so Load leaves this to the caller.
func ValidateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set GEMINI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			if provider.APIKey == "" {
				return fmt.Errorf("provider %s: api key is required", provider.Name)
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}
