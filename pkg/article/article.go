/*
article renders the [openai_article] shortcode: it asks the chat endpoint
to write about a prompt and returns the result as HTML. Rendering never
fails; problems are reported in the returned text so an enclosing page
always renders.
*/
package article

import (
	"bytes"
	"context"
	"html"
	"strings"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	goldmark "github.com/yuin/goldmark"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// KeySource provides the API key on each render
type KeySource interface {
	APIKey() string
}

// Renderer renders shortcodes with the key from a KeySource
type Renderer struct {
	keys KeySource
	opts []openai.Opt
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	msgNoKey       = "OpenAI API key is not set."
	msgErrorPrefix = "OpenAI Error: "
)

var (
	nl2br = strings.NewReplacer("\r\n", "<br />\r\n", "\n", "<br />\n", "\r", "<br />\r")
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewRenderer returns a renderer. The options are used for every client
// the renderer creates.
func NewRenderer(keys KeySource, opts ...openai.Opt) *Renderer {
	return &Renderer{keys: keys, opts: opts}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RenderShortcode parses and renders shortcode text
func (r *Renderer) RenderShortcode(ctx context.Context, text string) string {
	attrs, err := ParseShortcode(text)
	if err != nil {
		return renderError(err.Error())
	}
	return r.Render(ctx, attrs)
}

// Render generates an article for the attributes and returns it as HTML
func (r *Renderer) Render(ctx context.Context, attrs Attributes) string {
	key := ""
	if r.keys != nil {
		key = r.keys.APIKey()
	}
	if strings.TrimSpace(key) == "" {
		return html.EscapeString(msgNoKey)
	}

	// Create a client for this render
	api, err := openai.New(key, r.opts...)
	if err != nil {
		return renderError(openai.Message(err))
	}

	// Ask for the article
	response, err := api.Client().Chat(ctx, attrs.Model, []schema.Message{
		schema.UserPrompt(attrs.Prompt),
	}, attrs.MaxTokens)
	if err != nil {
		return renderError(openai.Message(err))
	}
	if message, ok := schema.ErrorMessage(response); ok {
		return renderError(message)
	}

	// Return the generated content
	content, _ := schema.Content(response)
	return toHTML(content, attrs.Format)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// renderError returns the error message as escaped HTML
func renderError(message string) string {
	return html.EscapeString(msgErrorPrefix + message)
}

func toHTML(content string, format Format) string {
	if format == FormatMarkdown {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(content), &buf); err == nil {
			return buf.String()
		}
	}
	return nl2br.Replace(html.EscapeString(content))
}
