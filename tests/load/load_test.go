//go:build load

package load_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"sync"
	"testing"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Stats struct {
	Searches         int
	FlightFallbacks  int
	SourcesSucceeded int
	SourcesFailed    int
	TotalResults     int
}

func (s *Stats) Add(other Stats) {
	s.Searches += other.Searches
	s.FlightFallbacks += other.FlightFallbacks
	s.SourcesSucceeded += other.SourcesSucceeded
	s.SourcesFailed += other.SourcesFailed
	s.TotalResults += other.TotalResults
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func clearRedis(t *testing.T, ctx context.Context, rdb *redis.Client) {
	err := rdb.FlushDB(ctx).Err()
	require.NoError(t, err, "Failed to flush Redis")
}

func search(ctx context.Context, url string, query dto.SearchQuery) (Stats, error) {
	payload, _ := json.Marshal(query)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return Stats{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Stats{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Stats{}, fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body))
	}

	var r dto.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Searches:         1,
		SourcesSucceeded: r.Metadata.SourcesSucceeded,
		SourcesFailed:    r.Metadata.SourcesFailed,
		TotalResults:     r.Metadata.TotalResults,
	}
	if slices.Contains(r.Metadata.FallbackSources, "flights") {
		stats.FlightFallbacks = 1
	}

	return stats, nil
}

// Runs against a live instance, rate limiting needs REDIS_ADDR and
// FLIGHT_PROVIDER_RATE_LIMIT set on the server.
func TestTravelSearchLoad(t *testing.T) {
	appHost := getEnv("APP_HOST", "http://localhost:8080")
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPass := getEnv("REDIS_PASSWORD", "redis123")

	url := appHost + "/api/v1/travel/search"
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	defer rdb.Close()

	query := dto.SearchQuery{
		Origin:      "JFK",
		Destination: "LAX",
		Date:        "2025-09-15",
		DateFormat:  "iso",
		City:        "Los Angeles",
	}

	t.Run("Concurrent Search Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)
		vus := 5
		stats := runScenario(t, ctx, url, query, vus)

		assert.Equal(t, vus, stats.Searches)
		assert.Equal(t, 0, stats.SourcesFailed, "fallback keeps every source successful")
		assert.Equal(t, vus*3, stats.SourcesSucceeded)
		assert.Greater(t, stats.TotalResults, 0)
	})

	t.Run("Rate Limit Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)

		vus := 20
		stats := runScenario(t, ctx, url, query, vus)

		fmt.Printf("Rate Limit Test Result: Searches = %d, Flight Fallbacks = %d, Succeeded Sources = %d\n",
			stats.Searches, stats.FlightFallbacks, stats.SourcesSucceeded)
		assert.Equal(t, vus, stats.Searches, "every search must still answer")
		assert.Greater(t, stats.FlightFallbacks, 0, "Should have triggered some rate limits with 20 concurrent requests")
	})
}

func runScenario(t *testing.T, ctx context.Context, url string, query dto.SearchQuery, vus int) Stats {
	var wg sync.WaitGroup
	var mu sync.Mutex
	scenarioStats := Stats{}

	for i := 0; i < vus; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			stats, err := search(ctx, url, query)
			if err != nil {
				t.Errorf("VU %d failed: %v", id, err)
				return
			}
			mu.Lock()
			scenarioStats.Add(stats)
			mu.Unlock()
		}(i)
	}

	wg.Wait()
	return scenarioStats
}
