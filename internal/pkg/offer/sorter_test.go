//go:build unit

package offer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestSortOffers_Closure(t *testing.T) {
	flights := []dto.FlightOffer{
		{ID: "1", Price: dto.Price{Amount: 456}, Points: 25000, Duration: dto.Duration{TotalMinutes: 375}, Confidence: intPtr(87)},
		{ID: "2", Price: dto.Price{Amount: 489}, Points: 28000, Duration: dto.Duration{TotalMinutes: 390}, Confidence: intPtr(92)},
		{ID: "3", Price: dto.Price{Amount: 398}, Points: 22000, Duration: dto.Duration{TotalMinutes: 405}},
		{ID: "4", Price: dto.Price{Amount: 456}, Points: 25000, Duration: dto.Duration{TotalMinutes: 375}, Confidence: intPtr(87)},
	}

	sortRequest := func(flights []dto.FlightOffer, strategy dto.SortStrategy, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			before := flightIDs(flights)

			got := SortOffers(flights, strategy)

			diff := cmp.Diff(wantIDs, flightIDs(got))
			if diff != "" {
				t.Fatalf("SortOffers result mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, before, flightIDs(flights), "input must not be reordered")
		}
	}

	t.Run("best_deal_stable_on_ties", sortRequest(flights, dto.SortBestDeal, []string{"3", "1", "4", "2"}))
	t.Run("fastest", sortRequest(flights, dto.SortFastest, []string{"1", "4", "2", "3"}))
	t.Run("most_points", sortRequest(flights, dto.SortMostPoints, []string{"2", "1", "4", "3"}))
	t.Run("ai_recommended_missing_last", sortRequest(flights, dto.SortAIRecommended, []string{"2", "1", "4", "3"}))
	t.Run("no_strategy_keeps_order", sortRequest(flights, "", []string{"1", "2", "3", "4"}))
	t.Run("empty_input", sortRequest([]dto.FlightOffer{}, dto.SortBestDeal, []string{}))
}

func TestSortResult(t *testing.T) {
	result := dto.SearchResult{
		Hotels: []dto.HotelOffer{
			{ID: "h1", Price: dto.Price{Amount: 189}},
			{ID: "h2", Price: dto.Price{Amount: 129}},
		},
		Cars: []dto.CarOffer{
			{ID: "c1", Price: dto.Price{Amount: 89}},
			{ID: "c2", Price: dto.Price{Amount: 45}},
		},
	}

	got := SortResult(result, dto.SortBestDeal)

	assert.Equal(t, "h2", got.Hotels[0].ID)
	assert.Equal(t, "c2", got.Cars[0].ID)
	assert.NotNil(t, got.Flights)
	assert.Empty(t, got.Flights)
	assert.Equal(t, "h1", result.Hotels[0].ID)
}
