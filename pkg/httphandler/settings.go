package httphandler

import (
	"net/http"
	"strings"

	// Packages
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type SettingsRequest struct {
	APIKey string `json:"api_key"`
}

type SettingsResponse struct {
	APIKey string `json:"api_key,omitempty"`
	Set    bool   `json:"set"`
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /settings
func SettingsHandler(admin *admin.Admin) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/settings", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				key := admin.APIKey()
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), SettingsResponse{
					APIKey: redactString(key),
					Set:    key != "",
				})
			case http.MethodPost:
				var req SettingsRequest
				if err := httprequest.Read(r, &req); err != nil {
					_ = httpresponse.Error(w, err)
					return
				}
				if strings.TrimSpace(req.APIKey) == "" {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With("api_key is required"))
					return
				}
				if err := admin.SetAPIKey(req.APIKey); err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				w.WriteHeader(http.StatusNoContent)
			case http.MethodDelete:
				if err := admin.SetAPIKey(""); err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				w.WriteHeader(http.StatusNoContent)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Get the stored API key, redacted",
			},
			Post: &openapi.Operation{
				Description: "Store the API key",
			},
			Delete: &openapi.Operation{
				Description: "Remove the stored API key",
			},
		})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

const redacted = "***"

// redactString returns the first 3 characters followed by asterisks for the rest.
// Returns fully redacted if the string is 6 characters or shorter, and empty
// for an empty string.
func redactString(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 6 {
		return redacted
	}
	return s[:3] + strings.Repeat("*", len(s)-3)
}
