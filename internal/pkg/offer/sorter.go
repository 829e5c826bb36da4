package offer

import (
	"sort"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
)

// SortOffers returns a sorted copy of offers, the input is left untouched.
// Sorting is stable so equal offers keep their fetch order, and an empty
// strategy keeps the fetch order as well.
func SortOffers[T dto.Offer](offers []T, strategy dto.SortStrategy) []T {
	sorted := make([]T, len(offers))
	copy(sorted, offers)

	switch strategy {
	case dto.SortBestDeal:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GetPrice() < sorted[j].GetPrice()
		})
	case dto.SortFastest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GetDurationMinutes() < sorted[j].GetDurationMinutes()
		})
	case dto.SortMostPoints:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GetPoints() > sorted[j].GetPoints()
		})
	case dto.SortAIRecommended:
		// missing confidence is reported as dto.NoConfidence and lands last
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GetConfidence() > sorted[j].GetConfidence()
		})
	}

	return sorted
}

// SortResult sorts every offer kind of the result independently.
func SortResult(result dto.SearchResult, strategy dto.SortStrategy) dto.SearchResult {
	return dto.SearchResult{
		Flights:  SortOffers(result.Flights, strategy),
		Hotels:   SortOffers(result.Hotels, strategy),
		Cars:     SortOffers(result.Cars, strategy),
		Packages: SortOffers(result.Packages, strategy),
	}
}
