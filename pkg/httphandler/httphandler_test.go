package httphandler_test

import (
	"net/http"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	article "github.com/mutablelogic/go-openai/pkg/article"
	httphandler "github.com/mutablelogic/go-openai/pkg/httphandler"
	settings "github.com/mutablelogic/go-openai/pkg/settings"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func completion(content string) map[string]any {
	return map[string]any{
		"choices": []any{
			map[string]any{"index": 0, "message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func newTestAdmin(t *testing.T, key string, stub transport.Transport) *admin.Admin {
	t.Helper()
	store, err := settings.New("")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetAPIKey(key); err != nil {
		t.Fatal(err)
	}
	a, err := admin.New(store, openai.WithTransport(stub))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func newTestMux(t *testing.T, key string, stub transport.Transport) (*admin.Admin, *http.ServeMux) {
	t.Helper()
	a := newTestAdmin(t, key, stub)
	return a, serveMux(a, stub)
}

func serveMux(a *admin.Admin, stub transport.Transport) *http.ServeMux {
	mux := http.NewServeMux()
	renderer := article.NewRenderer(a, openai.WithTransport(stub))
	path, handler, _ := httphandler.SettingsHandler(a)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.ValidateHandler(a)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.NonceHandler(a)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.TestHandler(a)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.ArticleHandler(renderer)
	mux.HandleFunc(path, handler)
	return mux
}
