package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	// Packages
	goopenai "github.com/sashabaranov/go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// UnknownError describes an embedded error with no message, type or code
	UnknownError = "unknown error"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseCompletion converts a decoded chat completion response into its
// typed form
func ParseCompletion(resp map[string]any) (*goopenai.ChatCompletionResponse, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	var completion goopenai.ChatCompletionResponse
	if err := json.Unmarshal(data, &completion); err != nil {
		return nil, err
	}
	return &completion, nil
}

// Content returns choices[0].message.content from a decoded chat
// completion response, and false if it is not present
func Content(resp map[string]any) (string, bool) {
	choices, ok := resp["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return "", false
	}
	message, ok := choice["message"].(map[string]any)
	if !ok {
		return "", false
	}
	content, ok := message["content"].(string)
	return content, ok
}

// ErrorMessage returns error.message embedded in a decoded response, and
// false if the response carries no error. An error without a message is
// described by its type or code, or else by UnknownError.
func ErrorMessage(resp map[string]any) (string, bool) {
	if resp == nil {
		return "", false
	}
	e, ok := resp["error"]
	if !ok || e == nil {
		return "", false
	}
	switch e := e.(type) {
	case map[string]any:
		for _, key := range []string{"message", "type", "code"} {
			if value, ok := e[key]; ok && value != nil {
				if text := strings.TrimSpace(fmt.Sprint(value)); text != "" {
					return text, true
				}
			}
		}
	case string:
		if text := strings.TrimSpace(e); text != "" {
			return text, true
		}
	}
	return UnknownError, true
}

// ParseError decodes an error body of the form {"error":{"message":...}}.
// It returns an error if the body is not JSON or carries no message.
func ParseError(data []byte) (*goopenai.APIError, error) {
	var body goopenai.ErrorResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	if body.Error == nil || body.Error.Message == "" {
		return nil, errors.New("missing error.message")
	}
	return body.Error, nil
}
