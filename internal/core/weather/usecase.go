package weather

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

type UseCase struct {
	registry ports.ProviderRegistry
	metrics  ports.MetricsCollector
	logger   ports.Logger
	now      func() time.Time

	// inflight is set only when concurrent misses should share one fetch
	inflight *singleflight.Group
}

type UseCaseDependencies struct {
	Registry ports.ProviderRegistry
	Metrics  ports.MetricsCollector
	Logger   ports.Logger

	// Now defaults to time.Now
	Now func() time.Time

	CoalesceFetches bool
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Registry == nil {
		return nil, errors.NewValidationError("provider registry is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	uc := &UseCase{
		registry: deps.Registry,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		now:      now,
	}
	if deps.CoalesceFetches {
		uc.inflight = &singleflight.Group{}
	}

	return uc, nil
}

// Get serves the provider's weather text from table while it is fresh and
// fetches a replacement otherwise. Fetch errors are returned unchanged and
// leave no entry for the provider.
func (uc *UseCase) Get(ctx context.Context, provider ports.ProviderID, ttlSeconds int, table *Table) (CachedItem, error) {
	if table == nil {
		return CachedItem{}, errors.NewValidationError("cache table is required")
	}
	if ttlSeconds < 0 {
		return CachedItem{}, errors.NewValidationError("cache seconds cannot be negative")
	}

	nowMs := uc.now().UnixMilli()
	providerName := provider.String()

	if item, ok := table.freshOrEvict(provider, nowMs, ttlSeconds); ok {
		uc.metrics.RecordCacheHit(ctx, providerName)
		uc.logger.Debug("Weather text served from cache",
			ports.F("provider", providerName),
			ports.F("fetched_at_ms", item.FetchedAtMs),
			ports.F("age_ms", nowMs-item.FetchedAtMs))
		return item, nil
	}

	uc.metrics.RecordCacheMiss(ctx, providerName)
	uc.logger.Debug("Weather text cache miss", ports.F("provider", providerName))

	if uc.inflight == nil {
		return uc.fetchAndStore(ctx, provider, nowMs, table)
	}

	// the shared fetch outlives any single caller; each caller can still stop waiting
	fetchCtx := context.WithoutCancel(ctx)
	results := uc.inflight.DoChan(providerName, func() (interface{}, error) {
		// a fetch for this provider may have completed since the first check
		if item, ok := table.freshOrEvict(provider, nowMs, ttlSeconds); ok {
			return item, nil
		}
		return uc.fetchAndStore(fetchCtx, provider, nowMs, table)
	})

	select {
	case res := <-results:
		if res.Err != nil {
			return CachedItem{}, res.Err
		}
		if res.Shared {
			uc.logger.Debug("Weather text fetch shared with concurrent caller", ports.F("provider", providerName))
		}
		return res.Val.(CachedItem), nil
	case <-ctx.Done():
		return CachedItem{}, ctx.Err()
	}
}

func (uc *UseCase) fetchAndStore(ctx context.Context, provider ports.ProviderID, nowMs int64, table *Table) (CachedItem, error) {
	text, err := uc.registry.Fetch(ctx, provider)
	if err != nil {
		uc.logger.Warn("Weather text fetch failed",
			ports.F("provider", provider.String()),
			ports.F("error", err.Error()))
		return CachedItem{}, err
	}

	item := CachedItem{
		Provider:    provider,
		FetchedAtMs: nowMs,
		Text:        text,
	}
	table.Store(item)

	return item, nil
}
