package llm

import (
	"context"
	"errors"

	"partypilot/api"
)

// LLMApiClient embeds the common HTTPClient
type LLMApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
	model  string
}

// NewLLMApiClient creates a new instance of LLMApiClient
func NewLLMApiClient(httpClient *api.HTTPClient) *LLMApiClient {
	return &LLMApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the API key and model used for completions.
func (c *LLMApiClient) SetCredentials(apiKey, model string) {
	c.apiKey = apiKey
	c.model = model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string                 `json:"model"`
	Messages       []chatMessage          `json:"messages"`
	Temperature    float64                `json:"temperature"`
	ResponseFormat map[string]interface{} `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CompleteJSON sends a chat-completion request constrained to JSON output and
// returns the raw content of the first choice.
func (c *LLMApiClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := chatRequest{
		Model:          c.model,
		Temperature:    0,
		ResponseFormat: map[string]interface{}{"type": "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var response chatResponse
	err := c.Request(ctx, "POST", "/chat/completions", headers, payload, &response)
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", errors.New("llm returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}
