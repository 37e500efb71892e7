package llmprovider_test

import (
	"context"
	"errors"
	"testing"

	"retail-insights/config"
	"retail-insights/pkg/llmprovider"
	"retail-insights/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration,
// provider initialization and the manager work together.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{
				Name:     "deepseek",
				Enabled:  true,
				Priority: 2,
				APIKey:   "test-deepseek-key",
				Model:    "deepseek-chat",
				Timeout:  "30s",
			},
			{
				Name:          "gemini",
				Enabled:       true,
				Priority:      1,
				APIKey:        "test-gemini-key",
				Model:         "gemini-2.5-flash",
				ResponseModel: "gemini-3-flash-preview",
				Timeout:       "30s",
			},
			{
				Name:     "disabled",
				Enabled:  false,
				Priority: 3,
			},
		},
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "1s",
	}

	if err := config.ValidateLLMConfig(cfg); err != nil {
		t.Fatalf("config should be valid: %v", err)
	}

	intent, err := llmprovider.InitializeProviders(context.Background(), cfg, llmprovider.StageIntent)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(intent) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(intent))
	}
	if intent[0].Name() != "gemini" || intent[1].Name() != "deepseek" {
		t.Errorf("Expected priority order gemini, deepseek; got %s, %s", intent[0].Name(), intent[1].Name())
	}
	if intent[0].Model() != "gemini-2.5-flash" {
		t.Errorf("Expected intent model, got %s", intent[0].Model())
	}

	response, err := llmprovider.InitializeProviders(context.Background(), cfg, llmprovider.StageResponse)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if response[0].Model() != "gemini-3-flash-preview" {
		t.Errorf("Expected response model, got %s", response[0].Model())
	}
	if response[1].Model() != "deepseek-chat" {
		t.Errorf("Expected deepseek to fall back to its model, got %s", response[1].Model())
	}

	manager, err := llmprovider.NewManagerFromConfig(context.Background(), cfg, llmprovider.StageIntent, nil, log.NewNop())
	if err != nil || manager == nil {
		t.Fatalf("Failed to build manager: %v", err)
	}
}

func TestIntegration_SkipsBrokenProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, llmprovider.StageIntent)
	if err != nil {
		t.Fatalf("Expected the working provider to be kept: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "deepseek" {
		t.Errorf("Expected only deepseek, got %d providers", len(providers))
	}
}

func TestIntegration_NoEnabledProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: false, Priority: 1}},
	}

	_, err := llmprovider.InitializeProviders(context.Background(), cfg, llmprovider.StageIntent)
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestModelFor(t *testing.T) {
	p := config.ProviderConfig{Model: "intent-model"}
	if got := llmprovider.ModelFor(p, llmprovider.StageResponse); got != "intent-model" {
		t.Errorf("Expected fallback to Model, got %s", got)
	}
	p.ResponseModel = "answer-model"
	if got := llmprovider.ModelFor(p, llmprovider.StageResponse); got != "answer-model" {
		t.Errorf("Expected ResponseModel, got %s", got)
	}
	if got := llmprovider.ModelFor(p, llmprovider.StageIntent); got != "intent-model" {
		t.Errorf("Expected Model for intent stage, got %s", got)
	}
}

func TestIntegration_QwenProvider(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", Model: "qwen-plus", ResponseModel: "qwen-max"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, llmprovider.StageResponse)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if providers[0].Name() != llmprovider.ProviderQwen || providers[0].Model() != "qwen-max" {
		t.Errorf("Expected qwen/qwen-max, got %s/%s", providers[0].Name(), providers[0].Model())
	}
}
