package llm

import "context"

// Completion defaults. One synchronous call per request - no retries, no
// streaming, no provider-side timeout tuning; transport failures
// propagate to the caller.
const (
	DefaultSystemPrompt = "You are BrandBot, a helpful brand content assistant for Dimensions."
	DefaultTemperature  = 0.7
	DefaultMaxTokens    = 2000
)

// Provider defines the interface for text-completion providers.
type Provider interface {
	// Complete sends a single prompt and returns the raw completion text.
	Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name (e.g. "openai", "gemini")
	Name() string
}

// CompletionRequest contains all parameters for a completion call.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	Prompt       string
	Temperature  float64
	MaxTokens    int64
}

// NewCompletionRequest builds a request with the fixed defaults applied.
func NewCompletionRequest(model, prompt string) *CompletionRequest {
	return &CompletionRequest{
		Model:        model,
		SystemPrompt: DefaultSystemPrompt,
		Prompt:       prompt,
		Temperature:  DefaultTemperature,
		MaxTokens:    DefaultMaxTokens,
	}
}

// TokenUsage reports token counts for observability.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Map renders the usage as the loose map the logger and Langfuse expect.
func (u TokenUsage) Map() map[string]interface{} {
	return map[string]interface{}{
		"input_tokens":  u.InputTokens,
		"output_tokens": u.OutputTokens,
		"total_tokens":  u.TotalTokens,
	}
}

// CompletionResponse contains the raw completion text and usage.
type CompletionResponse struct {
	Text  string
	Usage TokenUsage
}
