package openai

import (
	"context"
	"net/http"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	chatCompletionsPath = "chat/completions"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chat sends a conversation to the chat completions endpoint and returns the
// decoded response unchanged. When the response reports usage, CheckCost is
// called before returning.
func (c *Client) Chat(ctx context.Context, model string, messages []schema.Message, maxTokens int) (map[string]any, error) {
	if messages == nil {
		messages = []schema.Message{}
	}
	response, err := c.Request(ctx, chatCompletionsPath, http.MethodPost, map[string]any{
		"model":      model,
		"messages":   messages,
		"max_tokens": maxTokens,
	})
	if err != nil {
		return nil, err
	}

	// Check for usage
	if usage, ok := response["usage"].(map[string]any); ok {
		c.CheckCost(usage)
	}

	// Return the response
	return response, nil
}
