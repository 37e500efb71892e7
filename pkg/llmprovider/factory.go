package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"retail-insights/config"
	"retail-insights/pkg/deepseek"
	"retail-insights/pkg/gemini"
	"retail-insights/pkg/log"
	"retail-insights/pkg/qwen"
)

// Stage selects which configured model a provider is built with.
type Stage int

const (
	// StageIntent uses ProviderConfig.Model.
	StageIntent Stage = iota
	// StageResponse uses ProviderConfig.ResponseModel, falling back to Model.
	StageResponse
)

// ModelFor returns the model p should use for stage.
func ModelFor(p config.ProviderConfig, stage Stage) string {
	if stage == StageResponse && p.ResponseModel != "" {
		return p.ResponseModel
	}
	return p.Model
}

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, stage Stage) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p, stage)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// NewManagerFromConfig builds the providers for stage and wraps them in a Manager.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, stage Stage, observer CallObserver, logger log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, stage)
	if err != nil {
		return nil, err
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
		Observer:        observer,
	}, logger), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig, stage Stage) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	model := ModelFor(cfg, stage)
	if model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}
	timeout := parseDuration(cfg.Timeout, 0)

	switch cfg.Name {
	case ProviderDeepSeek:
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case ProviderQwen:
		client, err := qwen.New(qwen.Config{
			APIKey:  cfg.APIKey,
			Model:   model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	case ProviderGemini:
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
