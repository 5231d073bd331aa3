package openai_test

import (
	"errors"
	"fmt"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)
	err := openai.ErrMalformedResponse.With("missing error.message")
	assert.ErrorIs(err, openai.ErrMalformedResponse)
	assert.Equal("malformed response: missing error.message", err.Error())
	assert.Equal("bad parameter: key 42", openai.ErrBadParameter.Withf("key %d", 42).Error())
	assert.Equal("error code 99", openai.Err(99).Error())
}

func Test_error_002(t *testing.T) {
	// Rendering follows "<TypeName>: [<code>]: <message>"
	assert := assert.New(t)
	apiErr := &openai.APIError{Message: "Error: Invalid API key", Code: 401}
	assert.Equal("APIError: [401]: Error: Invalid API key", apiErr.Error())

	cause := errors.New("dial tcp: connection refused")
	netErr := &openai.NetworkError{Message: "Network error: " + cause.Error(), Cause: cause}
	assert.Equal("NetworkError: [0]: Network error: dial tcp: connection refused", netErr.Error())
	assert.ErrorIs(netErr, cause)
}

func Test_error_003(t *testing.T) {
	// Variants are found through wrapping and distinguished by type
	assert := assert.New(t)
	wrapped := fmt.Errorf("chat: %w", &openai.APIError{Message: "Error: quota", Code: 429})

	apiErr, ok := openai.IsAPIError(wrapped)
	assert.True(ok)
	assert.Equal(429, apiErr.Code)
	_, ok = openai.IsNetworkError(wrapped)
	assert.False(ok)

	assert.Equal("Error: quota", openai.Message(wrapped))
	assert.Equal("Network error: x", openai.Message(&openai.NetworkError{Message: "Network error: x"}))
	assert.Equal("bad parameter: y", openai.Message(openai.ErrBadParameter.With("y")))
	assert.Equal("", openai.Message(nil))
}
