package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/config"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/service"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/transport"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/carmock"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/hotelmock"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/sampledata"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/skypicker"
	"github.com/redis/go-redis/v9"
)

// @title           Travel Search Aggregation Service API
// @version         0.0.1
// @description     travel-search-aggregation-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init factory
	offerProviderFactory := initOfferProviderFactory(ctx, cfg)

	// init service endpoint
	return endpoints.Endpoints{
		AggregatorEndpoint: makeAggregatorEndpoint(offerProviderFactory, cfg),
		ProfileEndpoint: endpoints.MakeProfileEndpoint(
			service.NewProfileService(sampledata.LoyaltyPrograms, sampledata.Insights)),
	}
}

// initRateLimiter returns nil when no redis is configured, flights are then not rate limited
func initRateLimiter(ctx context.Context, cfg *config.Config) offerprovider.RateLimiter {
	if cfg.Redis.Addr == "" || cfg.Providers.FlightProvider.RateLimitRPS <= 0 {
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	slog.InfoContext(ctx, "flight rate limiter enabled",
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Int("rps", cfg.Providers.FlightProvider.RateLimitRPS))

	return redis_rate.NewLimiter(redisClient)
}

// register one source per offer kind, every one of them falls back to the sample data
func initOfferProviderFactory(ctx context.Context, cfg *config.Config) *offerprovider.OfferProviderFactory {
	flightCfg := cfg.Providers.FlightProvider
	flights := skypicker.NewProvider(offerprovider.FlightProviderConfig{
		SearchAPIURL:     flightCfg.SearchAPIURL,
		CORSRelayURL:     flightCfg.CORSRelayURL,
		UseCORSRelay:     flightCfg.UseCORSRelay,
		PartnerID:        flightCfg.PartnerID,
		ResultLimit:      flightCfg.ResultLimit,
		Currency:         flightCfg.Currency,
		PointsMultiplier: flightCfg.PointsMultiplier,
		Timeout:          flightCfg.Timeout,
		RateLimitRPS:     flightCfg.RateLimitRPS,
		Limiter:          initRateLimiter(ctx, cfg),
	})

	hotels := hotelmock.NewProvider(offerprovider.MockProviderConfig{
		Mode:             cfg.Providers.HotelProvider.Mode,
		PointsMultiplier: cfg.Providers.HotelProvider.PointsMultiplier,
		Latency:          cfg.Providers.HotelProvider.Latency,
	})

	cars := carmock.NewProvider(offerprovider.MockProviderConfig{
		Latency: cfg.Providers.CarProvider.Latency,
	})

	return offerprovider.NewOfferProviderFactory(
		offerprovider.WithFallback(offerprovider.SourceFlights, flights, sampledata.Flights),
		offerprovider.WithFallback(offerprovider.SourceHotels, hotels, sampledata.Hotels),
		offerprovider.WithFallback(offerprovider.SourceCars, cars, sampledata.Cars),
	)
}

func makeAggregatorEndpoint(factory *offerprovider.OfferProviderFactory,
	cfg *config.Config) endpoints.AggregatorEndpoint {

	// service
	aggregatorService := service.NewAggregatorService(factory, cfg.Providers.FetchTimeout)

	// endpoint
	return endpoints.MakeAggregatorEndpoint(aggregatorService)
}
