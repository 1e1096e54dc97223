package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/dto"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/exception"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string `json:"name"`
}

func (e *echoRequest) Bind(_ *http.Request) error {
	if e.Name == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "name is a required field",
			Fields:     []exception.FieldError{{Field: "name", Message: "name is a required field"}},
		}
	}

	return nil
}

func echoEndpoint(_ context.Context, req interface{}) (interface{}, error) {
	r, ok := req.(*echoRequest)
	if !ok || r == nil {
		return nil, errors.New("invalid type")
	}

	if r.Name == "boom" {
		return nil, errors.New("exploded")
	}

	return dto.Response{Message: "hello " + r.Name}, nil
}

func TestMakeHandlerFunc_Closure(t *testing.T) {
	handlerRequest := func(body string, wantStatus int, wantBody string) func(t *testing.T) {
		return func(t *testing.T) {
			h := MakeHandlerFunc(echoEndpoint, DecodeRequest[echoRequest], ResponseWithBody)

			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h(rec, req)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), wantBody)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		}
	}

	t.Run("ok", handlerRequest(`{"name":"vikor"}`, http.StatusOK, `"message":"hello vikor"`))
	t.Run("validation_error", handlerRequest(`{}`, http.StatusBadRequest, `"details":[`))
	t.Run("malformed_body", handlerRequest(`{"name":`, http.StatusBadRequest, ErrMalformedRequest.Message))
	t.Run("unknown_error", handlerRequest(`{"name":"boom"}`, http.StatusInternalServerError, "exploded"))
}

func TestDecodeEmpty(t *testing.T) {
	req, err := DecodeEmpty(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, err)
	assert.Nil(t, req)
}

func TestErrorResponse_Closure(t *testing.T) {
	errorRequest := func(err error, wantStatus int, want dto.ErrorResponse) func(t *testing.T) {
		return func(t *testing.T) {
			rec := httptest.NewRecorder()

			ErrorResponse(context.Background(), err, rec)

			assert.Equal(t, wantStatus, rec.Code)

			var got dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, want, got)
		}
	}

	notFound := exception.ApplicationError{StatusCode: http.StatusNotFound, Message: "not found"}

	t.Run("application_error", errorRequest(notFound, http.StatusNotFound, dto.ErrorResponse{Error: "not found"}))
	t.Run("wrapped_application_error", errorRequest(
		errors.Join(errors.New("endpoint"), notFound.WithCause(errors.New("detail"))),
		http.StatusNotFound, dto.ErrorResponse{Error: "not found"}))
	t.Run("with_details", errorRequest(
		notFound.WithFields(exception.FieldError{Path: "terms.a", Field: "l", Message: "l <= m"}),
		http.StatusNotFound, dto.ErrorResponse{
			Error:   "not found",
			Details: []exception.FieldError{{Path: "terms.a", Field: "l", Message: "l <= m"}},
		}))
	t.Run("unknown_error", errorRequest(errors.New("boom"), http.StatusInternalServerError,
		dto.ErrorResponse{Error: "boom"}))
}

type mockLimiter struct {
	mock.Mock
}

func (m *mockLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	args := m.Called(ctx, key, limit)

	res, _ := args.Get(0).(*redis_rate.Result)
	return res, args.Error(1)
}

func TestRateLimit_Closure(t *testing.T) {
	limit := redis_rate.PerSecond(2)

	rateLimitRequest := func(res *redis_rate.Result, limiterErr error, wantStatus int) func(t *testing.T) {
		return func(t *testing.T) {
			limiter := &mockLimiter{}
			limiter.On("Allow", mock.Anything, "vikor:calculate:10.0.0.7", limit).Return(res, limiterErr)

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			h := RateLimit(limiter, limit, "vikor:calculate")(next)

			req := httptest.NewRequest(http.MethodPost, "/calculate", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, wantStatus, rec.Code)
			limiter.AssertExpectations(t)
		}
	}

	t.Run("allowed", rateLimitRequest(&redis_rate.Result{Limit: limit, Allowed: 1, Remaining: 1}, nil, http.StatusOK))
	t.Run("throttled", rateLimitRequest(&redis_rate.Result{
		Limit: limit, Allowed: 0, RetryAfter: 300 * time.Millisecond,
	}, nil, http.StatusTooManyRequests))
	t.Run("limiter_down_fails_open", rateLimitRequest(nil, errors.New("redis: connection refused"), http.StatusOK))
}

func TestRateLimit_RetryAfterHeader(t *testing.T) {
	limit := redis_rate.PerSecond(1)
	limiter := &mockLimiter{}
	limiter.On("Allow", mock.Anything, mock.Anything, limit).
		Return(&redis_rate.Result{Limit: limit, RetryAfter: 2500 * time.Millisecond}, nil)

	h := RateLimit(limiter, limit, "k")(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), ErrTooManyRequests.Message)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(logger.RequestIDKey).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "fixed-id", seen)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-Id"))
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(slog.New(slog.NewTextHandler(io.Discard, nil)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
