package openai

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the API key and base endpoint used to authenticate and
// address requests.
type Config struct {
	apiKey   string
	endpoint string
}

// ConfigOpt is a functional option applied when the configuration is created
type ConfigOpt func(*Config) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint = "https://api.openai.com/v1/"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewConfig returns a configuration for the given API key. It returns
// ErrBadParameter if the key is empty or only contains whitespace.
func NewConfig(apiKey string, opts ...ConfigOpt) (*Config, error) {
	c := &Config{endpoint: DefaultEndpoint}
	if err := c.SetAPIKey(apiKey); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithConfigEndpoint replaces the base endpoint. A trailing slash is appended
// when missing, so endpoint paths can be concatenated directly.
func WithConfigEndpoint(endpoint string) ConfigOpt {
	return func(c *Config) error {
		endpoint = strings.TrimSpace(endpoint)
		if endpoint == "" {
			return ErrBadParameter.With("endpoint cannot be empty")
		}
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		c.endpoint = endpoint
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// APIKey returns the API key
func (c *Config) APIKey() string {
	return c.apiKey
}

// SetAPIKey replaces the API key. The same rule as NewConfig applies, so the
// key is never empty when used to authenticate a request.
func (c *Config) SetAPIKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return ErrBadParameter.With("API key cannot be empty")
	}
	c.apiKey = apiKey
	return nil
}

// Endpoint returns the base endpoint, always ending in a slash
func (c *Config) Endpoint() string {
	return c.endpoint
}
