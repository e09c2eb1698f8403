// Package llm provides a unified client interface for LLM providers
// including OpenAI, Anthropic (Claude), and Google Gemini. It handles
// API authentication, model listing, and fleet analysis generation.
package llm

import (
	"context"
	"errors"
)

// Provider types
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

// Model represents an available LLM model
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Client interface for LLM providers
type Client interface {
	TestConnection(ctx context.Context) error
	ListModels(ctx context.Context) ([]Model, error)
	GenerateFleetAnalysis(ctx context.Context, model string, fleetData interface{}) (string, error)
}

// NewClient factory function
func NewClient(provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey), nil
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey), nil
	case ProviderGoogle:
		return NewGoogleClient(apiKey), nil
	default:
		return nil, errors.New("unsupported provider: " + provider)
	}
}

// fallbackPrompt is used when no prompt file ships with the deployment.
const fallbackPrompt = `You are a Star Citizen fleet analyst. Analyze the provided fleet and loadout data and provide insights on:
1. Fleet composition strengths and weaknesses
2. Role coverage gaps (e.g., missing refueling, medical, repair capabilities)
3. Redundancies (multiple ships with similar roles)
4. Loadout choices (stock vs customized ships, notable weapon/component swaps)
5. Optimization suggestions (e.g., ships to add, loadouts to adjust)

Provide a clear, actionable analysis without using emojis.`
