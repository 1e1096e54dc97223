package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/transport"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/exception"
)

var ErrMalformedRequest = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "malformed request body",
}

// MakeHandlerFunc wires an endpoint to net/http with the shared error encoder.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
		kithttp.ServerErrorHandler(transport.ErrorHandlerFunc(func(ctx context.Context, err error) {
			slog.DebugContext(ctx, "request failed", slog.String("error", err.Error()))
		})),
	).ServeHTTP
}

// DecodeRequest binds the JSON body into a *T and runs its Bind hook, which
// is where request validation lives. Application errors from Bind pass
// through; anything else is reported as a malformed body.
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

		return nil, ErrMalformedRequest.WithCause(err)
	}

	return req, nil
}

// DecodeEmpty is used by routes without a request body.
func DecodeEmpty(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
