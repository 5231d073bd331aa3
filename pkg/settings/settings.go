/*
settings implements the host key/value settings store, holding the API key
between page renders. Values are persisted as a YAML file.
*/
package settings

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode"

	// Packages
	encrypt "github.com/mutablelogic/go-openai/pkg/encrypt"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Store is a persistent key-value store backed by a YAML file on disk. A
// store with no path keeps values in memory only.
type Store struct {
	mu         sync.RWMutex
	path       string
	data       map[string]string
	passphrase string
	apiKey     string // Opened API key, when sealed
}

// Opt is a functional option for a store
type Opt func(*Store) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// OptionAPIKey is the setting holding the API key
	OptionAPIKey = "openai_api_key"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a store at the given file path. If the file exists, its
// contents are loaded; otherwise the store starts empty.
func New(path string, opts ...Opt) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if path == "" {
		return s, nil
	}

	// Load existing file (ignore if it doesn't exist)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	} else if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &s.data); err != nil {
		return nil, err
	}
	if s.data == nil {
		s.data = make(map[string]string)
	}

	// Return success
	return s, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithPassphrase seals the API key with the passphrase before it is
// written, and opens it when read
func WithPassphrase(passphrase string) Opt {
	return func(s *Store) error {
		if err := encrypt.ValidatePassphrase(passphrase); err != nil {
			return err
		}
		s.passphrase = passphrase
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Path returns the file path, or empty for an in-memory store
func (s *Store) Path() string {
	return s.path
}

// Get retrieves a value by key, or empty string if the key does not exist
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key]
}

// Set stores a value by key and persists the store. An empty value
// removes the key. The API key is stored with SetAPIKey.
func (s *Store) Set(key, value string) error {
	if key == OptionAPIKey {
		return s.SetAPIKey(value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(key, value)
}

// Keys returns all keys in the store, sorted
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// APIKey returns the stored API key, or empty string if not set. A sealed
// key is returned empty when the store has no passphrase or the passphrase
// does not open it.
func (s *Store) APIKey() string {
	value := s.Get(OptionAPIKey)
	if !encrypt.IsSealed(value) {
		return value
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.apiKey != "" || s.passphrase == "" {
		return s.apiKey
	}
	if key, err := encrypt.Open(s.passphrase, value); err == nil {
		s.apiKey = key
	}
	return s.apiKey
}

// SetAPIKey sanitizes and stores the API key, sealed when the store has a
// passphrase. Storing an empty key clears it.
func (s *Store) SetAPIKey(key string) error {
	key = Sanitize(key)
	value := key
	if s.passphrase != "" && key != "" {
		if sealed, err := encrypt.Seal(s.passphrase, key); err != nil {
			return err
		} else {
			value = sealed
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = ""
	if value != key {
		s.apiKey = key
	}
	return s.set(OptionAPIKey, value)
}

// Sanitize trims whitespace and removes control characters from a single
// line text field
func Sanitize(value string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// set changes a value and persists the store, the caller holds the lock
func (s *Store) set(key, value string) error {
	if value == "" {
		delete(s.data, key)
	} else {
		s.data[key] = value
	}
	return s.save()
}

// save writes the store to disk, the caller holds the lock
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
