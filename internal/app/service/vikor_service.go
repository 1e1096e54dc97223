package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/dto"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/event"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/logger"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/metrics"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
	"github.com/redis/go-redis/v9"
)

type ResultCacher interface {
	GetLockKey(in vikor.Input) string
	GetCacheKey(in vikor.Input) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetResult(ctx context.Context, key string) (vikor.Results, error)
	SetResult(ctx context.Context,
		key string,
		results vikor.Results,
		expiration time.Duration,
	) error
}

type VikorService struct {
	Cache           ResultCacher
	Publisher       event.Publisher
	Subject         string
	DefaultV        float64
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewVikorService(cache ResultCacher, publisher event.Publisher, subject string,
	defaultV float64, cacheExpiration time.Duration, lockTimeout time.Duration) *VikorService {
	return &VikorService{
		Cache:           cache,
		Publisher:       publisher,
		Subject:         subject,
		DefaultV:        defaultV,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// Calculate runs a Fuzzy VIKOR calculation, answering from the result cache
// when the same input was calculated before.
// Calculate godoc
// @Summary      Calculate
// @Tags         VIKOR
// @Description  Rank alternatives and select the compromise set
// @Param        request  body      dto.CalculateRequest  true  "Problem"
// @Success      200      {object}  dto.CalculateResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      429      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/vikor/calculate [post]
func (s *VikorService) Calculate(
	ctx context.Context,
	req dto.CalculateRequest,
) (dto.CalculateResponse, error) {
	startTime := time.Now()
	calculationID := uuid.New().String()
	ctx = logger.WithCalculationID(ctx, calculationID)

	in := req.ToInput(s.DefaultV)
	if err := vikor.ValidateInput(in); err != nil {
		metrics.ObserveCalculation(metrics.OutcomeInvalid, time.Since(startTime))
		return dto.CalculateResponse{}, err
	}

	cacheKey := s.Cache.GetCacheKey(in)
	lockKey := s.Cache.GetLockKey(in)

	results, err := s.Cache.GetResult(ctx, cacheKey)
	cacheHit := err == nil
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "failed to get results from cache", slog.String("error", err.Error()))
	}

	if cacheHit {
		metrics.CacheHitsTotal.Inc()
	} else {
		results, err = vikor.Calculate(in)
		if err != nil {
			outcome := metrics.OutcomeError
			if errors.Is(err, vikor.ErrInvalidInput) {
				outcome = metrics.OutcomeInvalid
			}
			metrics.ObserveCalculation(outcome, time.Since(startTime))

			return dto.CalculateResponse{}, fmt.Errorf("failed to calculate: %w", err)
		}

		// concurrent identical requests all calculate, only the lock holder
		// stores the result
		s.storeResults(ctx, lockKey, cacheKey, results)
	}

	if len(results.Diagnostics) > 0 {
		slog.InfoContext(ctx, "degenerate input handled with fallbacks",
			slog.Int("diagnostics", len(results.Diagnostics)))
	}
	metrics.ObserveDiagnostics(results.Diagnostics)

	elapsed := time.Since(startTime)
	metrics.ObserveCalculation(metrics.OutcomeSuccess, elapsed)

	s.publishCompleted(ctx, calculationID, in.Config, results, cacheHit)

	return dto.CalculateResponse{
		Results: results,
		Metadata: dto.CalculateMetadata{
			CalculationID:     calculationID,
			CacheHit:          cacheHit,
			CalculationTimeMs: int(elapsed.Milliseconds()),
		},
	}, nil
}

func (s *VikorService) storeResults(ctx context.Context, lockKey, cacheKey string, results vikor.Results) {
	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire lock", slog.String("error", err.Error()))
		return
	}

	if !acquired {
		return
	}
	defer func() {
		if err := s.Cache.ReleaseLock(ctx, lockKey); err != nil {
			slog.WarnContext(ctx, "failed to release lock", slog.String("error", err.Error()))
		}
	}()

	if err := s.Cache.SetResult(ctx, cacheKey, results, s.CacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to set results to cache", slog.String("error", err.Error()))
	}
}

func (s *VikorService) publishCompleted(ctx context.Context, calculationID string,
	cfg vikor.Config, results vikor.Results, cacheHit bool) {
	err := s.Publisher.Publish(ctx, s.Subject, event.CalculationCompleted{
		CalculationID: calculationID,
		Alternatives:  cfg.NumAlternatives,
		Criteria:      cfg.NumCriteria,
		Experts:       cfg.NumExperts,
		CompromiseSet: results.Compromise.Labels(),
		CacheHit:      cacheHit,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to publish calculation event", slog.String("error", err.Error()))
	}
}
