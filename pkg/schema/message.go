package schema

import (
	"fmt"
	"strings"

	// Packages
	goopenai "github.com/sashabaranov/go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Role is the author of a chat message
type Role string

// Message is a single role-tagged entry in a conversation. An ordered slice
// of messages is sent as the "messages" field of a chat request.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RoleSystem    Role = goopenai.ChatMessageRoleSystem
	RoleUser      Role = goopenai.ChatMessageRoleUser
	RoleAssistant Role = goopenai.ChatMessageRoleAssistant
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMessage returns a message with the given role and content. The role
// is lower-cased and must be one of system, user or assistant.
func NewMessage(role, content string) (Message, error) {
	r := Role(strings.ToLower(strings.TrimSpace(role)))
	if !r.Valid() {
		return Message{}, fmt.Errorf("invalid role %q", role)
	}
	return Message{Role: r, Content: content}, nil
}

// UserPrompt returns a single user message
func UserPrompt(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// SystemPrompt returns a single system message
func SystemPrompt(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Valid returns true for the roles accepted by the chat endpoint
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}
