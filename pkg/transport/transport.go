/*
transport implements the capability used to perform a single HTTP exchange
with the remote API. The default implementation is backed by go-client;
tests substitute a Stub.
*/
package transport

import (
	"context"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Transport sends a request and returns the response. Any HTTP status is a
// successful exchange; an error means no response was received.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Func adapts an ordinary function to the Transport interface
type Func func(ctx context.Context, req *Request) (*Response, error)

// Request is a fully-formed outbound request
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is the status, headers and body of a completed exchange
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

var _ Transport = Func(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (fn Func) Send(ctx context.Context, req *Request) (*Response, error) {
	return fn(ctx, req)
}

// Success returns true if the status is in the 2xx range
func (r *Response) Success() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}
