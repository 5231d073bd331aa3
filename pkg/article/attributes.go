package article

import (
	"fmt"
	"regexp"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Attributes are the parameters of an [openai_article] shortcode
type Attributes struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Prompt    string `json:"prompt"`
	Format    Format `json:"format"`
}

// Format selects how generated content is turned into HTML
type Format string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Shortcode is the tag handled by the renderer
	Shortcode = "openai_article"

	DefaultModel     = "gpt-4o"
	DefaultMaxTokens = 150
	DefaultPrompt    = "Write an article about WordPress plugins."
)

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

var (
	reShortcode = regexp.MustCompile(`^\[\s*` + Shortcode + `((?:\s+[^\]]*)?)\]$`)
	reAttribute = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"']+))`)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Defaults returns the attributes used when a shortcode sets none
func Defaults() Attributes {
	return Attributes{
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		Prompt:    DefaultPrompt,
		Format:    FormatText,
	}
}

// ParseShortcode parses text of the form
// [openai_article prompt="..." max_tokens="100"] into attributes, starting
// from the defaults
func ParseShortcode(text string) (Attributes, error) {
	match := reShortcode.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return Attributes{}, fmt.Errorf("not an [%s] shortcode", Shortcode)
	}
	values := make(map[string]string)
	for _, attr := range reAttribute.FindAllStringSubmatch(match[1], -1) {
		values[strings.ToLower(attr[1])] = attr[2] + attr[3] + attr[4]
	}
	return Defaults().With(values)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// With returns a copy of the attributes with the given values applied.
// Unknown keys are ignored, and empty values keep the current attribute.
func (a Attributes) With(values map[string]string) (Attributes, error) {
	for key, value := range values {
		if value = strings.TrimSpace(value); value == "" {
			continue
		}
		switch key {
		case "model":
			a.Model = value
		case "prompt":
			a.Prompt = value
		case "max_tokens":
			n, err := schema.ParseMaxTokens(value)
			if err != nil {
				return a, err
			}
			a.MaxTokens = n
		case "format":
			f := Format(strings.ToLower(value))
			if !f.Valid() {
				return a, fmt.Errorf("invalid format %q", value)
			}
			a.Format = f
		}
	}
	return a, nil
}

// Valid returns true for a known format
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatMarkdown:
		return true
	default:
		return false
	}
}
