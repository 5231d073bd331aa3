package httphandler

import (
	"net/http"

	// Packages
	article "github.com/mutablelogic/go-openai/pkg/article"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /article
func ArticleHandler(renderer *article.Renderer) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/article", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				values := make(map[string]string)
				for key := range r.URL.Query() {
					values[key] = r.URL.Query().Get(key)
				}
				attrs, err := article.Defaults().With(values)
				if err != nil {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
					return
				}
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(renderer.Render(r.Context(), attrs)))
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Render an article for the prompt as HTML",
			},
		})
}
