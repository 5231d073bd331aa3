/*
tokenizer estimates the number of prompt tokens a conversation will use,
with the cl100k_base encoding.
*/
package tokenizer

import (
	"sync"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	tiktoken "github.com/tiktoken-go/tokenizer"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Per-message framing overhead, and the priming of the assistant reply
	tokensPerMessage = 3
	tokensPerReply   = 3
)

var (
	once     sync.Once
	codec    tiktoken.Codec
	codecErr error
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Count returns the number of tokens in text
func Count(text string) (int, error) {
	c, err := get()
	if err != nil {
		return 0, err
	}
	ids, _, err := c.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// CountMessages estimates the prompt tokens for a conversation, including
// the per-message framing added by the chat format
func CountMessages(messages []schema.Message) (int, error) {
	total := tokensPerReply
	for _, message := range messages {
		role, err := Count(string(message.Role))
		if err != nil {
			return 0, err
		}
		content, err := Count(message.Content)
		if err != nil {
			return 0, err
		}
		total += tokensPerMessage + role + content
	}
	return total, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func get() (tiktoken.Codec, error) {
	once.Do(func() {
		codec, codecErr = tiktoken.Get(tiktoken.Cl100kBase)
	})
	return codec, codecErr
}
