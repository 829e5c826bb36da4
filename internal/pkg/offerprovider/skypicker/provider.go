package skypicker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/providerutils"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/utils"
)

const (
	ProviderName   = "Skypicker"
	unknownAirline = "Unknown"
	maxErrorBody   = 2048
)

type Provider struct {
	Name             string
	SearchAPIURL     string
	CORSRelayURL     string
	UseCORSRelay     bool
	PartnerID        string
	ResultLimit      int
	Currency         string
	PointsMultiplier float64
	Timeout          time.Duration
	Limiter          offerprovider.RateLimiter
	RateLimitRPS     int
	Client           *http.Client
}

func NewProvider(config offerprovider.FlightProviderConfig) *Provider {
	return &Provider{
		Name:             ProviderName,
		SearchAPIURL:     config.SearchAPIURL,
		CORSRelayURL:     config.CORSRelayURL,
		UseCORSRelay:     config.UseCORSRelay,
		PartnerID:        config.PartnerID,
		ResultLimit:      config.ResultLimit,
		Currency:         config.Currency,
		PointsMultiplier: config.PointsMultiplier,
		Timeout:          config.Timeout,
		Limiter:          config.Limiter,
		RateLimitRPS:     config.RateLimitRPS,
		Client:           &http.Client{},
	}
}

// Search makes a single call to the flight search API, there is no retry.
// Every failure is classified as network, protocol or malformed response.
func (p *Provider) Search(ctx context.Context, query dto.SearchQuery) ([]dto.FlightOffer, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	if err := p.allow(ctx); err != nil {
		return nil, err
	}

	endpoint, err := p.buildURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	slog.DebugContext(ctx, "calling flight search API",
		slog.String("provider", p.Name),
		slog.Bool("cors_relay", p.UseCORSRelay))

	resp, err := p.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providerutils.ErrNetworkFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s: %s", providerutils.ErrProtocolFailure,
			resp.Status, strings.TrimSpace(string(body)))
	}

	var response SearchFlightResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("%w: %v", providerutils.ErrMalformedResponse, err)
	}

	if response.Data == nil {
		return nil, fmt.Errorf("%w: missing data list", providerutils.ErrMalformedResponse)
	}

	flights := providerutils.SanitizeFlights(p.flightToDTO(response.Data, query))
	if len(flights) == 0 {
		return nil, providerutils.ErrNoOffersFound
	}

	return flights, nil
}

func (p *Provider) allow(ctx context.Context) error {
	if p.Limiter == nil || p.RateLimitRPS <= 0 {
		return nil
	}

	res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", p.Name),
		redis_rate.PerSecond(p.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return providerutils.ErrProviderRateLimitExceeded
	}

	return nil
}

// buildURL builds a single-day search URL. With the CORS relay enabled the
// target URL travels percent-encoded in the relay's url parameter.
func (p *Provider) buildURL(query dto.SearchQuery) (string, error) {
	date, err := utils.FormatDate(query.Date, query.Convention())
	if err != nil {
		return "", fmt.Errorf("format search date: %w", err)
	}

	v := url.Values{}
	v.Set("fly_from", query.Origin)
	v.Set("fly_to", query.Destination)
	v.Set("date_from", date)
	v.Set("date_to", date)
	if p.PartnerID != "" {
		v.Set("partner", p.PartnerID)
	}
	if p.ResultLimit > 0 {
		v.Set("limit", strconv.Itoa(p.ResultLimit))
	}
	if p.Currency != "" {
		v.Set("curr", p.Currency)
	}

	target := strings.TrimRight(p.SearchAPIURL, "?") + "?" + v.Encode()
	if !p.UseCORSRelay {
		return target, nil
	}

	relay := url.Values{}
	relay.Set("url", target)

	return strings.TrimRight(p.CORSRelayURL, "?") + "?" + relay.Encode(), nil
}

func (p *Provider) flightToDTO(flights []Flight, query dto.SearchQuery) []dto.FlightOffer {
	results := make([]dto.FlightOffer, len(flights))
	for i, flight := range flights {
		origin := firstOr(flight.FlyFrom, query.Origin)
		destination := firstOr(flight.FlyTo, query.Destination)
		minutes := p.getDurationMinutes(flight)

		results[i] = dto.FlightOffer{
			ID:          p.generateID(flight.ID, i),
			Provider:    p.Name,
			Airline:     p.getAirline(flight.Airlines),
			Route:       fmt.Sprintf("%s-%s", origin, destination),
			Origin:      origin,
			Destination: destination,
			Price: dto.Price{
				Amount:    flight.Price,
				Currency:  p.Currency,
				Formatted: p.formatPrice(flight.Price),
			},
			Points: utils.CalculatePoints(flight.Price, p.PointsMultiplier),
			Duration: dto.Duration{
				TotalMinutes: int(minutes),
				Formatted:    utils.ConvertMinutesToDuration(minutes),
			},
			Departure: timeOfDay(flight.DTime),
			Arrival:   timeOfDay(flight.ATime),
			Stops:     max(len(flight.Route)-1, 0),
		}
	}
	return results
}

func (p *Provider) getDurationMinutes(flight Flight) int64 {
	minutes := utils.ConvertDurationToMinutes(flight.FlyDuration)
	if minutes == 0 && flight.ATime > flight.DTime && flight.DTime > 0 {
		minutes = utils.ConvertSecondsToMinutes(flight.ATime - flight.DTime)
	}

	return minutes
}

func (p *Provider) getAirline(airlines []string) string {
	for _, airline := range airlines {
		if strings.TrimSpace(airline) != "" {
			return airline
		}
	}

	return unknownAirline
}

func (p *Provider) formatPrice(amount float64) string {
	if p.Currency == "" || p.Currency == "USD" {
		return utils.FormatUSD(amount)
	}

	return fmt.Sprintf("%.2f %s", amount, p.Currency)
}

func (p *Provider) generateID(code string, index int) string {
	if code == "" {
		code = strconv.Itoa(index + 1)
	}
	return fmt.Sprintf("%s_%s", code, p.Name)
}

func (p *Provider) client() *http.Client {
	if p.Client == nil {
		return http.DefaultClient
	}
	return p.Client
}

func timeOfDay(epochSeconds int64) *string {
	if epochSeconds <= 0 {
		return nil
	}

	formatted := utils.FormatTimeOfDay(epochSeconds)
	return &formatted
}

func firstOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
