package transport_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_http_001(t *testing.T) {
	// Headers, method and body reach the server, the body comes back verbatim
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v1/chat/completions", r.URL.Path)
		assert.Equal("Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(`{"a":1}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tr, err := transport.NewHTTP(server.URL + "/v1/")
	if !assert.NoError(err) {
		t.FailNow()
	}
	resp, err := tr.Send(context.Background(), &transport.Request{
		Method: http.MethodPost,
		URL:    server.URL + "/v1/chat/completions",
		Header: http.Header{"Authorization": []string{"Bearer test-key"}},
		Body:   []byte(`{"a":1}`),
	})
	if assert.NoError(err) {
		assert.Equal(http.StatusOK, resp.Status)
		assert.True(resp.Success())
		assert.Equal(`{"ok":true}`, string(resp.Body))
	}
}

func Test_http_002(t *testing.T) {
	// A non-2xx status is a response, not an error
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API key"}}`))
	}))
	defer server.Close()

	tr, err := transport.NewHTTP(server.URL)
	if !assert.NoError(err) {
		t.FailNow()
	}
	resp, err := tr.Send(context.Background(), &transport.Request{Method: http.MethodGet, URL: server.URL + "/models"})
	if assert.NoError(err) {
		assert.Equal(http.StatusUnauthorized, resp.Status)
		assert.False(resp.Success())
		assert.Contains(string(resp.Body), "Invalid API key")
	}
}

func Test_http_003(t *testing.T) {
	// An unreachable server is an error with no response
	assert := assert.New(t)
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	tr, err := transport.NewHTTP(url)
	if !assert.NoError(err) {
		t.FailNow()
	}
	resp, err := tr.Send(context.Background(), &transport.Request{Method: http.MethodGet, URL: url + "/models"})
	assert.Error(err)
	assert.Nil(resp)
}

func Test_stub_001(t *testing.T) {
	assert := assert.New(t)
	stub := transport.NewStub(http.StatusCreated, map[string]any{"id": "x"})
	assert.Nil(stub.Last())

	resp, err := stub.Send(context.Background(), &transport.Request{Method: http.MethodPost, URL: "a"})
	if assert.NoError(err) {
		assert.Equal(http.StatusCreated, resp.Status)
		assert.JSONEq(`{"id":"x"}`, string(resp.Body))
	}
	_, _ = stub.Send(context.Background(), &transport.Request{Method: http.MethodGet, URL: "b"})
	assert.Len(stub.Requests(), 2)
	assert.Equal("b", stub.Last().URL)
}

func Test_stub_002(t *testing.T) {
	assert := assert.New(t)
	stub := transport.NewFailingStub(errors.New("connection refused"))
	resp, err := stub.Send(context.Background(), &transport.Request{})
	assert.EqualError(err, "connection refused")
	assert.Nil(resp)
	assert.Len(stub.Requests(), 1)
}

func Test_func_001(t *testing.T) {
	assert := assert.New(t)
	var tr transport.Transport = transport.Func(func(_ context.Context, req *transport.Request) (*transport.Response, error) {
		return &transport.Response{Status: http.StatusTeapot, Body: []byte(req.URL)}, nil
	})
	resp, err := tr.Send(context.Background(), &transport.Request{URL: "pot"})
	if assert.NoError(err) {
		assert.Equal(http.StatusTeapot, resp.Status)
		assert.Equal("pot", string(resp.Body))
	}
}
