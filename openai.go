package openai

import (
	"context"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// OpenAI is the single-object entry point, composing a configuration and a
// client
type OpenAI struct {
	client *Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an entry point for the given API key. It fails with
// ErrBadParameter when the key is empty.
func New(apiKey string, opts ...Opt) (*OpenAI, error) {
	o, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}
	config, err := NewConfig(apiKey, o.configOpts...)
	if err != nil {
		return nil, err
	}
	client, err := NewClient(config, opts...)
	if err != nil {
		return nil, err
	}
	return &OpenAI{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns the underlying client
func (o *OpenAI) Client() *Client {
	return o.client
}

// Request forwards to Client.Request
func (o *OpenAI) Request(ctx context.Context, endpoint, method string, data map[string]any) (map[string]any, error) {
	return o.client.Request(ctx, endpoint, method, data)
}
