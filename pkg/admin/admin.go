/*
admin implements the example settings page: it stores and validates the
API key, and sends a test request guarded by a single-use nonce.
*/
package admin

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	settings "github.com/mutablelogic/go-openai/pkg/settings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Admin holds the settings store and the nonces issued for test requests
type Admin struct {
	mu     sync.Mutex
	store  *settings.Store
	opts   []openai.Opt
	nonces map[string]time.Time
	now    func() time.Time
}

// Status is the outcome of validating an API key
type Status string

// Validation is the result of ValidateKey
type Validation struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	StatusValid       Status = "valid"       // The key was accepted
	StatusInvalid     Status = "invalid"     // The key was rejected
	StatusUnreachable Status = "unreachable" // No response was received
	StatusUnverified  Status = "unverified"  // A response was received but says nothing about the key
)

const (
	// NonceLifetime is how long an issued nonce can be used
	NonceLifetime = 24 * time.Hour
)

const (
	validateModel     = "gpt-4o"
	validatePrompt    = "Check API key validity."
	validateMaxTokens = 10
	testModel         = "gpt-4o"
	testPrompt        = "Write an article about WordPress development."
	testMaxTokens     = 150
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an admin page backed by the store. The options are used for
// every client the page creates.
func New(store *settings.Store, opts ...openai.Opt) (*Admin, error) {
	if store == nil {
		return nil, openai.ErrBadParameter.With("settings store is required")
	}
	return &Admin{
		store:  store,
		opts:   opts,
		nonces: make(map[string]time.Time),
		now:    time.Now,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Store returns the settings store
func (a *Admin) Store() *settings.Store {
	return a.store
}

// APIKey returns the stored key
func (a *Admin) APIKey() string {
	return a.store.APIKey()
}

// SetAPIKey sanitizes and stores the key. An empty key clears it.
func (a *Admin) SetAPIKey(key string) error {
	return a.store.SetAPIKey(key)
}

// Validate checks the stored key
func (a *Admin) Validate(ctx context.Context) Validation {
	return a.ValidateKey(ctx, a.store.APIKey())
}

// ValidateKey sends one small chat request with the key and reports whether
// the service accepted it
func (a *Admin) ValidateKey(ctx context.Context, key string) Validation {
	api, err := openai.New(settings.Sanitize(key), a.opts...)
	if err != nil {
		return Validation{StatusInvalid, "The OpenAI API key is not set."}
	}

	response, err := api.Client().Chat(ctx, validateModel, []schema.Message{
		schema.SystemPrompt(validatePrompt),
	}, validateMaxTokens)
	if apiErr, ok := openai.IsAPIError(err); ok {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return Validation{StatusInvalid, "The OpenAI API key is invalid. Please enter a valid key."}
		}
		return Validation{StatusUnverified, "The OpenAI API key could not be verified. " + apiErr.Message}
	} else if netErr, ok := openai.IsNetworkError(err); ok {
		return Validation{StatusUnreachable, "The OpenAI API could not be reached. " + netErr.Message}
	} else if err != nil {
		return Validation{StatusUnverified, "The OpenAI API key could not be verified. " + err.Error()}
	}
	if _, ok := schema.ErrorMessage(response); ok {
		return Validation{StatusInvalid, "The OpenAI API key is invalid. Please enter a valid key."}
	}

	// Return success
	return Validation{StatusValid, "The OpenAI API key is valid."}
}

// Nonce issues a single-use token for TestRequest, valid for NonceLifetime
func (a *Admin) Nonce() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Drop expired nonces
	now := a.now()
	for nonce, expires := range a.nonces {
		if now.After(expires) {
			delete(a.nonces, nonce)
		}
	}

	nonce := uuid.NewString()
	a.nonces[nonce] = now.Add(NonceLifetime)
	return nonce
}

// TestRequest consumes the nonce and asks for a short article with the
// stored key. It returns an empty string when the response has no content.
func (a *Admin) TestRequest(ctx context.Context, nonce string) (string, error) {
	if !a.consume(nonce) {
		return "", openai.ErrBadParameter.With("invalid or expired nonce")
	}
	key := a.store.APIKey()
	if strings.TrimSpace(key) == "" {
		return "", openai.ErrNotFound.With("Please set your OpenAI API key first.")
	}

	api, err := openai.New(key, a.opts...)
	if err != nil {
		return "", err
	}
	response, err := api.Client().Chat(ctx, testModel, []schema.Message{
		schema.UserPrompt(testPrompt),
	}, testMaxTokens)
	if err != nil {
		return "", err
	}

	// Return the content, if any
	content, _ := schema.Content(response)
	return content, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (a *Admin) consume(nonce string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	expires, exists := a.nonces[nonce]
	if !exists {
		return false
	}
	delete(a.nonces, nonce)
	return !a.now().After(expires)
}
