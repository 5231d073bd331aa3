package httphandler

import (
	"net/http"

	// Packages
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type NonceResponse struct {
	Nonce string `json:"nonce"`
}

type TestRequest struct {
	Nonce string `json:"nonce"`
}

type TestResponse struct {
	Content string `json:"content"`
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /validate
func ValidateHandler(admin *admin.Admin) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/validate", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), admin.Validate(r.Context()))
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Validate the stored API key with a small request",
			},
		})
}

// Path: /nonce
func NonceHandler(admin *admin.Admin) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/nonce", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), NonceResponse{Nonce: admin.Nonce()})
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Issue a single-use nonce for a test request",
			},
		})
}

// Path: /test
func TestHandler(admin *admin.Admin) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/test", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				var req TestRequest
				if err := httprequest.Read(r, &req); err != nil {
					_ = httpresponse.Error(w, err)
					return
				}
				content, err := admin.TestRequest(r.Context(), req.Nonce)
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), TestResponse{Content: content})
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Post: &openapi.Operation{
				Description: "Send a test request with the stored API key",
			},
		})
}
