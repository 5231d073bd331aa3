package httphandler

import (
	"errors"
	"net/http"

	// Package
	openai "github.com/mutablelogic/go-openai"
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	article "github.com/mutablelogic/go-openai/pkg/article"
	server "github.com/mutablelogic/go-server"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Router interface {
	RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) error
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func RegisterHandlers(router server.HTTPRouter, admin *admin.Admin, renderer *article.Renderer, middleware bool) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, router.(Router).RegisterFunc(path, handler, middleware, spec))
	}

	// Register handlers
	register(SettingsHandler(admin))
	register(ValidateHandler(admin))
	register(NonceHandler(admin))
	register(TestHandler(admin))
	register(ArticleHandler(renderer))

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts client errors to an httpresponse.Err, preserving the
// message. Failures of the upstream API map to 502 and unknown error codes
// map to 500.
func httpErr(err error) error {
	if apiErr, ok := openai.IsAPIError(err); ok {
		return httpresponse.Err(http.StatusBadGateway).With(apiErr.Message)
	}
	if netErr, ok := openai.IsNetworkError(err); ok {
		return httpresponse.Err(http.StatusBadGateway).With(netErr.Message)
	}
	var code openai.Err
	if !errors.As(err, &code) {
		return err
	}
	switch code {
	case openai.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case openai.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case openai.ErrMalformedResponse:
		return httpresponse.Err(http.StatusBadGateway).With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
