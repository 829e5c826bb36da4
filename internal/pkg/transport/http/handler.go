package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/exception"
)

var ErrMalformedRequest = exception.ApplicationError{
	Message:    "malformed request body",
	StatusCode: http.StatusBadRequest,
}

// MakeHandlerFunc wires an endpoint with its decoder and encoder into a
// handler. Errors are answered by ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// NoRequest is the decoder of endpoints that take no input.
func NoRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

// DecodeRequest decodes the JSON body into a new T and runs its Bind method.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, ErrMalformedRequest.WithMessage(fmt.Sprintf("malformed request body: %v", err))
	}

	return req, nil
}
