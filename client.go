/*
openai implements a thin client for the OpenAI chat completion API.
https://platform.openai.com/docs/api-reference
*/
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client sends authenticated requests to the API. A client is not safe for
// concurrent use; create one client per caller.
type Client struct {
	config    *Config
	transport transport.Transport
	tracer    trace.Tracer
	logger    *log.Logger
	threshold uint64
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	contentTypeJSON = "application/json"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewClient returns a client for the given configuration. Unless
// WithTransport is used, requests are sent with a go-client transport.
func NewClient(config *Config, opts ...Opt) (*Client, error) {
	if config == nil {
		return nil, ErrBadParameter.With("configuration is required")
	}
	o, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:    config,
		transport: o.transport,
		tracer:    o.tracer,
		logger:    o.logger,
		threshold: o.threshold,
	}
	if c.transport == nil {
		if t, err := transport.NewHTTP(config.Endpoint(), o.clientOpts...); err != nil {
			return nil, err
		} else {
			c.transport = t
		}
	}

	// Return success
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Config returns the configuration
func (c *Client) Config() *Config {
	return c.config
}

// Transport returns the transport used for requests
func (c *Client) Transport() transport.Transport {
	return c.transport
}

// SetTransport replaces the transport, for example with a test double
func (c *Client) SetTransport(t transport.Transport) error {
	if t == nil {
		return ErrBadParameter.With("transport is required")
	}
	c.transport = t
	return nil
}

// Request sends one request to endpoint, relative to the configured base
// endpoint, and returns the decoded JSON object. The method defaults to GET.
//
// A non-success status fails with *APIError, or ErrMalformedResponse when
// the error body cannot be read. A transport failure fails with *NetworkError.
func (c *Client) Request(ctx context.Context, endpoint, method string, body map[string]any) (result map[string]any, err error) {
	if method == "" {
		method = http.MethodGet
	}

	// Otel span
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "Request",
		attribute.String("method", method),
		attribute.String("endpoint", endpoint),
	)
	defer func() { endSpan(err) }()

	// Build the request
	req, err := c.newRequest(endpoint, method, body)
	if err != nil {
		return nil, err
	}

	// Exactly one exchange
	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, newNetworkError(err)
	} else if !resp.Success() {
		return nil, decodeError(resp)
	}

	// Return the decoded body
	return decodeBody(resp)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) newRequest(endpoint, method string, body map[string]any) (*transport.Request, error) {
	req := &transport.Request{
		Method: method,
		URL:    c.config.Endpoint() + endpoint,
		Header: http.Header{},
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey())
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	// GET and HEAD carry no payload unless one was given
	if len(body) == 0 && (method == http.MethodGet || method == http.MethodHead) {
		return req, nil
	}
	if body == nil {
		body = map[string]any{}
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, ErrBadParameter.Withf("cannot encode request body: %v", err)
	}
	req.Body = data

	// Return success
	return req, nil
}

func decodeBody(resp *transport.Response) (map[string]any, error) {
	result := make(map[string]any)
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, ErrMalformedResponse.Withf("status %d: %v", resp.Status, err)
	} else if result == nil {
		return nil, ErrMalformedResponse.Withf("status %d: null body", resp.Status)
	}
	return result, nil
}

// decodeError maps a non-success response onto an APIError
func decodeError(resp *transport.Response) error {
	apiErr, err := schema.ParseError(resp.Body)
	if err != nil {
		return ErrMalformedResponse.Withf("status %d: %v", resp.Status, err)
	}
	return newAPIError(apiErr.Message, resp.Status, apiErr.Type)
}
