package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Stub is a Transport test double. It records every request and replies
// with a fixed status and body, or with Err when set.
type Stub struct {
	Status int
	Body   []byte
	Err    error

	mu       sync.Mutex
	requests []*Request
}

var _ Transport = (*Stub)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewStub returns a stub replying with the given status and JSON-encoded body
func NewStub(status int, body any) *Stub {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return &Stub{Status: status, Body: data}
}

// NewFailingStub returns a stub where every exchange fails with err
func NewFailingStub(err error) *Stub {
	return &Stub{Err: err}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s *Stub) Send(_ context.Context, req *Request) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if s.Err != nil {
		return nil, s.Err
	}
	status := s.Status
	if status == 0 {
		status = http.StatusOK
	}
	return &Response{
		Status: status,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   s.Body,
	}, nil
}

// Requests returns the requests sent so far
func (s *Stub) Requests() []*Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Request(nil), s.requests...)
}

// Last returns the most recent request, or nil
func (s *Stub) Last() *Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}
