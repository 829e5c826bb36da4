package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/config"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/service"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/carmock"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/hotelmock"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/sampledata"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/skypicker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves the router with a flight source that always fails,
// so flights come from the fallback data.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	flights := skypicker.NewProvider(offerprovider.FlightProviderConfig{
		SearchAPIURL: "http://127.0.0.1:1/flights",
		Timeout:      200 * time.Millisecond,
	})

	factory := offerprovider.NewOfferProviderFactory(
		offerprovider.WithFallback(offerprovider.SourceFlights, flights, sampledata.Flights),
		offerprovider.WithFallback(offerprovider.SourceHotels,
			hotelmock.NewProvider(offerprovider.MockProviderConfig{Mode: hotelmock.ModeStatic}), sampledata.Hotels),
		offerprovider.WithFallback(offerprovider.SourceCars,
			carmock.NewProvider(offerprovider.MockProviderConfig{}), sampledata.Cars),
	)

	cfg := &config.Config{HTTP: config.HTTP{CORSAllowedOrigins: []string{"http://localhost:8444"}}}
	router := MakeHTTPRouter(cfg, endpoints.Endpoints{
		AggregatorEndpoint: endpoints.MakeAggregatorEndpoint(service.NewAggregatorService(factory, time.Second)),
		ProfileEndpoint: endpoints.MakeProfileEndpoint(
			service.NewProfileService(sampledata.LoyaltyPrograms, sampledata.Insights)),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func TestRouter_Health(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_Search(t *testing.T) {
	server := newTestServer(t)

	searchRequest := func(req func() (*http.Response, error), wantStatus int) func(t *testing.T) {
		return func(t *testing.T) {
			resp, err := req()
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

			if wantStatus != http.StatusOK {
				var body dto.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.NotEmpty(t, body.Error)
				return
			}

			var body dto.SearchResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "JFK", body.Query.Origin)
			assert.Equal(t, []string{offerprovider.SourceFlights}, body.Metadata.FallbackSources)
			assert.Len(t, body.Result.Flights, 3)
			assert.Len(t, body.Result.Hotels, 3)
			assert.Len(t, body.Result.Cars, 3)
			assert.Len(t, body.Result.Packages, 3)
			assert.Equal(t, 12, body.Metadata.TotalResults)
			// best deal first
			assert.Equal(t, "JetBlue", body.Result.Flights[0].Airline)
		}
	}

	t.Run("post", searchRequest(func() (*http.Response, error) {
		return http.Post(server.URL+"/api/v1/travel/search", "application/json", strings.NewReader(
			`{"origin": "jfk", "destination": "LAX", "date": "09/15/2025", "date_format": "us", "sort_strategy": "best-deal"}`))
	}, http.StatusOK))

	t.Run("get", searchRequest(func() (*http.Response, error) {
		return http.Get(server.URL + "/api/v1/travel/search?origin=JFK&destination=LAX&date=2025-09-15&sort_strategy=best-deal")
	}, http.StatusOK))

	t.Run("post_invalid_query", searchRequest(func() (*http.Response, error) {
		return http.Post(server.URL+"/api/v1/travel/search", "application/json", strings.NewReader(
			`{"origin": "JFK", "destination": "LAX", "date": "2025-09-15", "date_format": "us"}`))
	}, http.StatusBadRequest))

	t.Run("post_malformed_body", searchRequest(func() (*http.Response, error) {
		return http.Post(server.URL+"/api/v1/travel/search", "application/json", strings.NewReader(`{`))
	}, http.StatusBadRequest))

	t.Run("get_missing_date", searchRequest(func() (*http.Response, error) {
		return http.Get(server.URL + "/api/v1/travel/search?origin=JFK&destination=LAX")
	}, http.StatusBadRequest))
}

func TestRouter_Sort(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/v1/travel/sort", "application/json", strings.NewReader(`{
		"strategy": "most-points",
		"result": {"cars": [
			{"id": "a", "points": 3500},
			{"id": "b", "points": 6800}
		]}
	}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SortResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Result.Cars, 2)
	assert.Equal(t, "b", body.Result.Cars[0].ID)
	assert.Empty(t, body.Result.Flights)

	resp, err = http.Post(server.URL+"/api/v1/travel/sort", "application/json",
		strings.NewReader(`{"strategy": "cheapest", "result": {}}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Profile(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/travel/profile")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.LoyaltyPrograms, 4)
	assert.Equal(t, "$1,562.50", body.LoyaltyPrograms[0].CashValue.Formatted)
	assert.Equal(t, "$5,234.50", body.TotalCashValue.Formatted)
	assert.Len(t, body.Insights, 4)
}
