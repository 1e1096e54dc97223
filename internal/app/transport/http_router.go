package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/config"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/dto"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const calculateRateLimitPrefix = "vikor:ratelimit:calculate"

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.Limiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1/vikor", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Group(func(router chi.Router) {
			if limiter != nil && cfg.Vikor.RateLimitRPS > 0 {
				router.Use(httptransport.RateLimit(limiter,
					redis_rate.PerSecond(cfg.Vikor.RateLimitRPS), calculateRateLimitPrefix))
			}

			router.Post("/calculate", httptransport.MakeHandlerFunc(
				endpts.VikorEndpoint.Calculate,
				httptransport.DecodeRequest[dto.CalculateRequest],
				httptransport.ResponseWithBody,
			))
		})

		router.Get("/terms/defaults", httptransport.MakeHandlerFunc(
			endpts.VikorEndpoint.DefaultTerms,
			httptransport.DecodeEmpty,
			httptransport.ResponseWithBody,
		))

		router.Post("/terms/validate", httptransport.MakeHandlerFunc(
			endpts.VikorEndpoint.ValidateTerms,
			httptransport.DecodeRequest[dto.TermsRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/terms/save", httptransport.MakeHandlerFunc(
			endpts.VikorEndpoint.SaveTerms,
			httptransport.DecodeRequest[dto.TermsRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/matrix/resize", httptransport.MakeHandlerFunc(
			endpts.VikorEndpoint.ResizeMatrix,
			httptransport.DecodeRequest[dto.ResizeRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
