package llm

import (
	"context"
	"fmt"
	"os"
)

const SAMPLE_COMPLETION_PATH = "./resources/sample_trip_skeleton.json"

// LLMApiClientMock embeds mocked logic for the llm api client
type LLMApiClientMock struct {
	completionPath string
}

// NewLLMApiClientMock creates a new instance of LLMApiClientMock
func NewLLMApiClientMock() *LLMApiClientMock {
	return &LLMApiClientMock{completionPath: SAMPLE_COMPLETION_PATH}
}

// SetCredentials is a no-op on the mock.
func (c *LLMApiClientMock) SetCredentials(apiKey, model string) {}

// CompleteJSON returns the canned completion from disk regardless of the
// prompts.
func (c *LLMApiClientMock) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	data, err := os.ReadFile(c.completionPath)
	if err != nil {
		fmt.Println("Could not read sample completion from json")
		return "", err
	}
	return string(data), nil
}
