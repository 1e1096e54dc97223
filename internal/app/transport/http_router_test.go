package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/config"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/dto"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/endpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calculateBody = `{
	"num_alternatives": 2,
	"num_criteria": 1,
	"num_experts": 1,
	"benefit_cost": [true],
	"criteria_inputs": [["H"]],
	"alternative_inputs": [[["G"], ["P"]]]
}`

type fixedLimiter struct {
	allowed int
	calls   int
}

func (l *fixedLimiter) Allow(_ context.Context, _ string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	l.calls++
	return &redis_rate.Result{Limit: limit, Allowed: l.allowed}, nil
}

func testEndpoints() endpoints.Endpoints {
	respond := func(resp interface{}) func(context.Context, interface{}) (interface{}, error) {
		return func(context.Context, interface{}) (interface{}, error) {
			return resp, nil
		}
	}

	return endpoints.Endpoints{
		VikorEndpoint: endpoints.VikorEndpoint{
			Calculate:     respond(dto.CalculateResponse{Metadata: dto.CalculateMetadata{CalculationID: "calc-1"}}),
			DefaultTerms:  respond(dto.DefaultTermsResponse{}),
			ValidateTerms: respond(dto.ValidateTermsResponse{Valid: true}),
			SaveTerms:     respond(dto.SaveTermsResponse{}),
			ResizeMatrix:  respond(dto.ResizeResponse{NumAlternatives: 3}),
		},
	}
}

func TestMakeHTTPRouter_Routes(t *testing.T) {
	require.NoError(t, dto.InitValidator())

	cfg := &config.Config{}
	router := MakeHTTPRouter(cfg, testEndpoints(), nil)

	routeRequest := func(method, path, body string, wantStatus int, wantBody string) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), wantBody)
		}
	}

	t.Run("health", routeRequest(http.MethodGet, "/health", "", http.StatusNoContent, ""))
	t.Run("metrics", routeRequest(http.MethodGet, "/metrics", "", http.StatusOK, "go_goroutines"))
	t.Run("calculate", routeRequest(http.MethodPost, "/api/v1/vikor/calculate", calculateBody,
		http.StatusOK, `"calculation_id":"calc-1"`))
	t.Run("calculate_invalid", routeRequest(http.MethodPost, "/api/v1/vikor/calculate", `{}`,
		http.StatusBadRequest, `"details":[`))
	t.Run("default_terms", routeRequest(http.MethodGet, "/api/v1/vikor/terms/defaults", "",
		http.StatusOK, `"criteria_terms"`))
	t.Run("validate_terms", routeRequest(http.MethodPost, "/api/v1/vikor/terms/validate",
		`{"terms":[]}`, http.StatusOK, `"valid":true`))
	t.Run("resize", routeRequest(http.MethodPost, "/api/v1/vikor/matrix/resize",
		`{"num_alternatives":3,"num_criteria":1,"num_experts":1}`, http.StatusOK, `"num_alternatives":3`))
	t.Run("unknown_route", routeRequest(http.MethodGet, "/api/v1/vikor/nope", "", http.StatusNotFound, ""))
}

func TestMakeHTTPRouter_RateLimitsCalculateOnly(t *testing.T) {
	require.NoError(t, dto.InitValidator())

	cfg := &config.Config{Vikor: config.Vikor{RateLimitRPS: 1}}
	limiter := &fixedLimiter{allowed: 0}
	router := MakeHTTPRouter(cfg, testEndpoints(), limiter)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/vikor/calculate",
		strings.NewReader(calculateBody)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/vikor/terms/defaults", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, limiter.calls)
}
