package article_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	article "github.com/mutablelogic/go-openai/pkg/article"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

type key string

func (k key) APIKey() string { return string(k) }

// modelNotFound replies 404 with the requested model repeated in the message
func modelNotFound() transport.Func {
	return func(_ context.Context, req *transport.Request) (*transport.Response, error) {
		var body map[string]any
		if err := json.Unmarshal(req.Body, &body); err != nil {
			return nil, err
		}
		data, err := json.Marshal(map[string]any{
			"error": map[string]any{"message": fmt.Sprintf("The model `%v` does not exist", body["model"])},
		})
		if err != nil {
			return nil, err
		}
		return &transport.Response{Status: http.StatusNotFound, Body: data}, nil
	}
}

func completion(content string) map[string]any {
	return map[string]any{
		"choices": []any{
			map[string]any{"index": 0, "message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_attributes_001(t *testing.T) {
	assert := assert.New(t)

	attrs, err := article.ParseShortcode(`[openai_article]`)
	if assert.NoError(err) {
		assert.Equal(article.Defaults(), attrs)
		assert.Equal("gpt-4o", attrs.Model)
		assert.Equal(150, attrs.MaxTokens)
		assert.Equal("Write an article about WordPress plugins.", attrs.Prompt)
	}

	attrs, err = article.ParseShortcode(`[openai_article prompt="What are the benefits of using WordPress?" max_tokens='100' model=gpt-4o-mini format=markdown]`)
	if assert.NoError(err) {
		assert.Equal("What are the benefits of using WordPress?", attrs.Prompt)
		assert.Equal(100, attrs.MaxTokens)
		assert.Equal("gpt-4o-mini", attrs.Model)
		assert.Equal(article.FormatMarkdown, attrs.Format)
	}
}

func Test_attributes_002(t *testing.T) {
	assert := assert.New(t)

	_, err := article.ParseShortcode(`[gallery ids="1,2"]`)
	assert.Error(err)
	_, err = article.ParseShortcode(`[openai_article max_tokens="lots"]`)
	assert.Error(err)
	_, err = article.ParseShortcode(`[openai_article format="pdf"]`)
	assert.Error(err)

	// Unknown and empty attributes are ignored
	attrs, err := article.ParseShortcode(`[openai_article colour="red" prompt=""]`)
	if assert.NoError(err) {
		assert.Equal(article.Defaults(), attrs)
	}
}

func Test_render_001(t *testing.T) {
	// Missing key
	assert := assert.New(t)
	renderer := article.NewRenderer(key(""))
	assert.Equal("OpenAI API key is not set.", renderer.Render(context.Background(), article.Defaults()))
}

func Test_render_002(t *testing.T) {
	// Content is escaped and line breaks preserved
	assert := assert.New(t)
	stub := transport.NewStub(http.StatusOK, completion("Plugins <extend> WordPress.\nThey are useful & easy."))
	renderer := article.NewRenderer(key("sk-test"), openai.WithTransport(stub))

	html := renderer.RenderShortcode(context.Background(), `[openai_article prompt="Plugins?" max_tokens="50"]`)
	assert.Equal("Plugins &lt;extend&gt; WordPress.<br />\nThey are useful &amp; easy.", html)

	var body map[string]any
	if assert.NoError(json.Unmarshal(stub.Last().Body, &body)) {
		assert.Equal("gpt-4o", body["model"])
		assert.Equal(float64(50), body["max_tokens"])
		assert.Equal([]any{map[string]any{"role": "user", "content": "Plugins?"}}, body["messages"])
	}
}

func Test_render_003(t *testing.T) {
	// Markdown is rendered through goldmark
	assert := assert.New(t)
	stub := transport.NewStub(http.StatusOK, completion("# Plugins\n\nUse **few** of them."))
	renderer := article.NewRenderer(key("sk-test"), openai.WithTransport(stub))

	attrs := article.Defaults()
	attrs.Format = article.FormatMarkdown
	html := renderer.Render(context.Background(), attrs)
	assert.Contains(html, "<h1>Plugins</h1>")
	assert.Contains(html, "<strong>few</strong>")
}

func Test_render_004(t *testing.T) {
	// Failures are rendered, never raised
	assert := assert.New(t)

	stub := transport.NewStub(http.StatusUnauthorized, map[string]any{"error": map[string]any{"message": "Invalid API key"}})
	renderer := article.NewRenderer(key("sk-bad"), openai.WithTransport(stub))
	assert.Equal("OpenAI Error: Error: Invalid API key", renderer.Render(context.Background(), article.Defaults()))

	renderer = article.NewRenderer(key("sk-test"), openai.WithTransport(transport.NewFailingStub(errors.New("timeout"))))
	assert.Equal("OpenAI Error: Network error: timeout", renderer.Render(context.Background(), article.Defaults()))

	stub = transport.NewStub(http.StatusOK, map[string]any{"error": map[string]any{"message": "quota exceeded"}})
	renderer = article.NewRenderer(key("sk-test"), openai.WithTransport(stub))
	assert.Equal("OpenAI Error: quota exceeded", renderer.Render(context.Background(), article.Defaults()))

	assert.Contains(renderer.RenderShortcode(context.Background(), "[caption]"), "OpenAI Error: ")
}

func Test_render_005(t *testing.T) {
	// Error messages are escaped
	assert := assert.New(t)
	renderer := article.NewRenderer(key("sk-test"), openai.WithTransport(modelNotFound()))

	attrs := article.Defaults()
	attrs.Model = "<script>alert(1)</script>"
	html := renderer.Render(context.Background(), attrs)
	assert.Equal("OpenAI Error: Error: The model `&lt;script&gt;alert(1)&lt;/script&gt;` does not exist", html)
	assert.NotContains(html, "<script>")

	stub := transport.NewStub(http.StatusOK, map[string]any{"error": map[string]any{"message": "<b>quota</b> & limits"}})
	renderer = article.NewRenderer(key("sk-test"), openai.WithTransport(stub))
	assert.Equal("OpenAI Error: &lt;b&gt;quota&lt;/b&gt; &amp; limits", renderer.Render(context.Background(), article.Defaults()))

	html = renderer.RenderShortcode(context.Background(), `[openai_article format="<img>"]`)
	assert.Contains(html, "&lt;img&gt;")
	assert.NotContains(html, "<img>")
}
