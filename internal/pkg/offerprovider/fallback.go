package offerprovider

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
)

type fallbackTrackerKey struct{}

// FallbackTracker records which sources served fallback data during one search.
type FallbackTracker struct {
	mu      sync.Mutex
	sources []string
}

// WithFallbackTracker attaches a fresh tracker to ctx.
func WithFallbackTracker(ctx context.Context) (context.Context, *FallbackTracker) {
	tracker := &FallbackTracker{}
	return context.WithValue(ctx, fallbackTrackerKey{}, tracker), tracker
}

func (t *FallbackTracker) record(source string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sources = append(t.sources, source)
}

// Sources returns the recorded source names in lexical order.
func (t *FallbackTracker) Sources() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	sources := make([]string, len(t.sources))
	copy(sources, t.sources)
	slices.Sort(sources)

	return sources
}

// FallbackProvider never returns an error: any failure of the wrapped
// provider is replaced by a fixed list of offers.
type FallbackProvider[T dto.Offer] struct {
	Source   string
	Provider Provider[T]
	Fallback func() []T
}

func WithFallback[T dto.Offer](source string, provider Provider[T], fallback func() []T) *FallbackProvider[T] {
	return &FallbackProvider[T]{
		Source:   source,
		Provider: provider,
		Fallback: fallback,
	}
}

func (p *FallbackProvider[T]) Search(ctx context.Context, query dto.SearchQuery) ([]T, error) {
	offers, err := p.Provider.Search(ctx, query)
	if err == nil {
		return offers, nil
	}

	slog.WarnContext(ctx, "offer source failed, serving fallback data",
		slog.String("fallback_source", p.Source),
		slog.Any("error", err))

	if tracker, ok := ctx.Value(fallbackTrackerKey{}).(*FallbackTracker); ok {
		tracker.record(p.Source)
	}

	return p.Fallback(), nil
}
