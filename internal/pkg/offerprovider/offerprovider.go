package offerprovider

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
)

const (
	SourceFlights = "flights"
	SourceHotels  = "hotels"
	SourceCars    = "cars"
)

// config for the remote flight source
type FlightProviderConfig struct {
	SearchAPIURL     string
	CORSRelayURL     string
	UseCORSRelay     bool
	PartnerID        string
	ResultLimit      int
	Currency         string
	PointsMultiplier float64
	Timeout          time.Duration
	RateLimitRPS     int
	Limiter          RateLimiter
}

// config for the synthetic hotel and car sources
type MockProviderConfig struct {
	Mode             string
	PointsMultiplier float64
	Latency          time.Duration
}

// Provider fetches one kind of offer for a query.
type Provider[T dto.Offer] interface {
	Search(ctx context.Context, query dto.SearchQuery) ([]T, error)
}

type (
	FlightProvider = Provider[dto.FlightOffer]
	HotelProvider  = Provider[dto.HotelOffer]
	CarProvider    = Provider[dto.CarOffer]
)

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// OfferProviderFactory holds the one provider registered per source.
type OfferProviderFactory struct {
	Flights FlightProvider
	Hotels  HotelProvider
	Cars    CarProvider
}

func NewOfferProviderFactory(flights FlightProvider, hotels HotelProvider,
	cars CarProvider) *OfferProviderFactory {
	return &OfferProviderFactory{
		Flights: flights,
		Hotels:  hotels,
		Cars:    cars,
	}
}
