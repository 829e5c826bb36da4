package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider"
)

// number of sources fanned out per search: flights, hotels and cars
const numberOfSources = 3

type sourceResult struct {
	Source  string
	Flights []dto.FlightOffer
	Hotels  []dto.HotelOffer
	Cars    []dto.CarOffer
	Error   error
}

type AggregatorService struct {
	ProviderFactory *offerprovider.OfferProviderFactory
	FetchTimeout    time.Duration
}

func NewAggregatorService(providerFactory *offerprovider.OfferProviderFactory,
	fetchTimeout time.Duration) *AggregatorService {
	return &AggregatorService{
		ProviderFactory: providerFactory,
		FetchTimeout:    fetchTimeout,
	}
}

// Search fetches flights, hotels and cars concurrently and combines them
// into one result. A failing source degrades to an empty list, only an
// invalid query or the failure of every source is an error.
// Search godoc
// @Summary      Search travel offers
// @Tags         Travel
// @Description  Search flights, hotels and rental cars and return them as one result
// @Param        request  body      dto.SearchQuery  true  "Search Query"
// @Success      200      {object}  dto.SearchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/v1/travel/search [post]
func (s *AggregatorService) Search(
	ctx context.Context,
	query dto.SearchQuery,
) (dto.SearchResponse, error) {
	startTime := time.Now()

	query = query.Normalized()
	if err := query.Validate(); err != nil {
		return dto.SearchResponse{}, err
	}

	ctx, tracker := offerprovider.WithFallbackTracker(ctx)

	result, numberOfFailedSources := s.getFromProviders(ctx, query)
	if numberOfFailedSources == numberOfSources {
		return dto.SearchResponse{}, ErrAllSourcesFailed
	}

	// score, bundle, filter and sort
	result.Flights = offer.ScoreFlights(result.Flights)
	result.Packages = offer.BuildPackages(result.Flights, result.Hotels)
	result = offer.FilterResult(result, query.FilterOption)
	result = offer.SortResult(result, query.SortStrategy)

	metadata := dto.Metadata{
		SourcesQueried:   numberOfSources,
		SourcesSucceeded: numberOfSources - numberOfFailedSources,
		SourcesFailed:    numberOfFailedSources,
		FallbackSources:  tracker.Sources(),
		TotalResults:     result.Len(),
		SearchTimeMs:     int(time.Since(startTime).Milliseconds()),
	}

	slog.InfoContext(ctx, "search completed",
		slog.String("route", query.Origin+"-"+query.Destination),
		slog.Int("total_results", metadata.TotalResults),
		slog.Int("sources_failed", metadata.SourcesFailed),
		slog.Any("fallback_sources", metadata.FallbackSources))

	return dto.SearchResponse{
		Query:    query,
		Metadata: metadata,
		Result:   result,
	}, nil
}

// Sort reorders a result the caller already holds. The input is not modified.
// Sort godoc
// @Summary      Sort travel offers
// @Tags         Travel
// @Param        request  body      dto.SortRequest  true  "Sort Request"
// @Success      200      {object}  dto.SortResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/travel/sort [post]
func (s *AggregatorService) Sort(ctx context.Context, req dto.SortRequest) (dto.SortResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.SortResponse{}, err
	}

	slog.DebugContext(ctx, "sorting result",
		slog.String("strategy", string(req.Strategy)),
		slog.Int("total_results", req.Result.Len()))

	return dto.SortResponse{
		Strategy: req.Strategy,
		Result:   offer.SortResult(req.Result, req.Strategy),
	}, nil
}

func (s *AggregatorService) getFromProviders(ctx context.Context,
	query dto.SearchQuery,
) (dto.SearchResult, int) {
	results := make(chan sourceResult, numberOfSources)
	var wg sync.WaitGroup

	// concurrently call all sources, each one under its own timeout
	wg.Add(numberOfSources)
	go func() {
		defer wg.Done()
		flights, err := searchSource(ctx, s.FetchTimeout, offerprovider.SourceFlights,
			s.ProviderFactory.Flights, query)
		results <- sourceResult{Source: offerprovider.SourceFlights, Flights: flights, Error: err}
	}()
	go func() {
		defer wg.Done()
		hotels, err := searchSource(ctx, s.FetchTimeout, offerprovider.SourceHotels,
			s.ProviderFactory.Hotels, query)
		results <- sourceResult{Source: offerprovider.SourceHotels, Hotels: hotels, Error: err}
	}()
	go func() {
		defer wg.Done()
		cars, err := searchSource(ctx, s.FetchTimeout, offerprovider.SourceCars,
			s.ProviderFactory.Cars, query)
		results <- sourceResult{Source: offerprovider.SourceCars, Cars: cars, Error: err}
	}()

	// wait all go routine finish
	go func() {
		wg.Wait()
		close(results)
	}()

	numberOfFailedSources := 0
	var result dto.SearchResult
	for res := range results {
		if res.Error != nil {
			slog.WarnContext(ctx, "offer source failed",
				slog.String("offer_source", res.Source),
				slog.Any("error", res.Error))
			numberOfFailedSources++
			continue
		}

		switch res.Source {
		case offerprovider.SourceFlights:
			result.Flights = res.Flights
		case offerprovider.SourceHotels:
			result.Hotels = res.Hotels
		case offerprovider.SourceCars:
			result.Cars = res.Cars
		}
	}

	return result, numberOfFailedSources
}

func searchSource[T dto.Offer](ctx context.Context, timeout time.Duration, source string,
	provider offerprovider.Provider[T], query dto.SearchQuery) ([]T, error) {
	ctx = logger.WithSource(ctx, source)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return provider.Search(ctx, query)
}
