package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Providers Provider   `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT"`
	CORSAllowedOrigins []string      `mapstructure:"HTTP_CORS_ALLOWED_ORIGINS"`
}

// Redis backs the outbound rate limiter, an empty address disables it.
type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type FlightProvider struct {
	SearchAPIURL     string        `mapstructure:"FLIGHT_PROVIDER_SEARCH_API_URL"`
	CORSRelayURL     string        `mapstructure:"FLIGHT_PROVIDER_CORS_RELAY_URL"`
	UseCORSRelay     bool          `mapstructure:"FLIGHT_PROVIDER_USE_CORS_RELAY"`
	PartnerID        string        `mapstructure:"FLIGHT_PROVIDER_PARTNER_ID"`
	ResultLimit      int           `mapstructure:"FLIGHT_PROVIDER_RESULT_LIMIT"`
	Currency         string        `mapstructure:"FLIGHT_PROVIDER_CURRENCY"`
	PointsMultiplier float64       `mapstructure:"FLIGHT_PROVIDER_POINTS_MULTIPLIER"`
	Timeout          time.Duration `mapstructure:"FLIGHT_PROVIDER_TIMEOUT"`
	RateLimitRPS     int           `mapstructure:"FLIGHT_PROVIDER_RATE_LIMIT"`
}

type HotelProvider struct {
	Mode             string        `mapstructure:"HOTEL_PROVIDER_MODE"`
	PointsMultiplier float64       `mapstructure:"HOTEL_PROVIDER_POINTS_MULTIPLIER"`
	Latency          time.Duration `mapstructure:"HOTEL_PROVIDER_LATENCY"`
}

type CarProvider struct {
	Latency time.Duration `mapstructure:"CAR_PROVIDER_LATENCY"`
}

type Provider struct {
	FlightProvider FlightProvider `mapstructure:",squash"`
	HotelProvider  HotelProvider  `mapstructure:",squash"`
	CarProvider    CarProvider    `mapstructure:",squash"`
	FetchTimeout   time.Duration  `mapstructure:"PROVIDER_FETCH_TIMEOUT"`
}
