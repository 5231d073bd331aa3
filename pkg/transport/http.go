package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	version "github.com/mutablelogic/go-openai/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// HTTP is a Transport which sends requests with a go-client HTTP client, so
// client options such as tracing, timeouts and OpenTelemetry apply.
type HTTP struct {
	*client.Client
}

var _ Transport = (*HTTP)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewHTTP creates a transport for the given base endpoint
func NewHTTP(endpoint string, opts ...client.ClientOpt) (*HTTP, error) {
	defaults := []client.ClientOpt{
		client.OptEndpoint(endpoint),
		client.OptUserAgent(version.UserAgent()),
	}
	if c, err := client.New(append(defaults, opts...)...); err != nil {
		return nil, err
	} else {
		return &HTTP{c}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Send performs the exchange on the underlying *http.Client. The response
// body is read in full and closed before returning.
func (t *HTTP) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	r, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Header {
		for _, value := range values {
			r.Header.Add(key, value)
		}
	}

	// Use the underlying *http.Client directly, status codes are interpreted by the caller
	resp, err := t.Client.Client.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// Return success
	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   data,
	}, nil
}
