package llm

import "context"

// LLMAPI defines the interface for chat-completion backends used by the
// LLM-backed prompt interpreter.
type LLMAPI interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	SetCredentials(apiKey, model string)
}
