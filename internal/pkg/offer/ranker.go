package offer

import (
	"math"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
)

// weighted scoring using normalization
// ref: https://www.1000minds.com/decision-making/what-is-mcdm-mcda

// weights for each criteria
const (
	WeightPrice             = 0.7
	WeightDurationInMinutes = 0.3
)

// confidence is spread over [MinConfidence, MaxConfidence], best flight on top
const (
	MaxConfidence = 100
	MinConfidence = 60
)

const (
	PredictionBookNow = "Good time to book"
	PredictionStable  = "Rates stable"
	PredictionWait    = "Price may drop in the next few days"
)

// ScoreFlights gives a confidence to the flights that have none.
// Score is calculated using weighted scoring using normalization over the
// whole list, 0 indicates the best flight and 1 indicates the worst flight.
// A copy is returned and flights that already have a confidence keep it.
func ScoreFlights(flights []dto.FlightOffer) []dto.FlightOffer {
	results := make([]dto.FlightOffer, len(flights))
	copy(results, flights)

	priceMin, priceMax := findPriceRange(flights)
	durationMin, durationMax := findDurationRange(flights)

	for i, flight := range results {
		if flight.Confidence != nil {
			continue
		}

		priceScore := normalizeValue(flight.Price.Amount, priceMin, priceMax)
		durationScore := normalizeValue(float64(flight.Duration.TotalMinutes),
			float64(durationMin), float64(durationMax))

		score := WeightPrice*priceScore + WeightDurationInMinutes*durationScore
		confidence := scoreToConfidence(score)

		results[i].Confidence = &confidence
		if flight.Prediction == "" {
			results[i].Prediction = predictionFor(confidence)
		}
	}

	return results
}

func scoreToConfidence(score float64) int {
	return int(math.Round(MaxConfidence - (MaxConfidence-MinConfidence)*score))
}

func predictionFor(confidence int) string {
	switch {
	case confidence >= 90:
		return PredictionBookNow
	case confidence >= 75:
		return PredictionStable
	default:
		return PredictionWait
	}
}

func findPriceRange(flights []dto.FlightOffer) (float64, float64) {
	if len(flights) == 0 {
		return 0, 0
	}

	minPrice := math.MaxFloat64
	maxPrice := -math.MaxFloat64
	for _, flight := range flights {
		if flight.Price.Amount < minPrice {
			minPrice = flight.Price.Amount
		}
		if flight.Price.Amount > maxPrice {
			maxPrice = flight.Price.Amount
		}
	}
	return minPrice, maxPrice
}

func findDurationRange(flights []dto.FlightOffer) (int, int) {
	if len(flights) == 0 {
		return 0, 0
	}

	minDuration := math.MaxInt
	maxDuration := -math.MaxInt
	for _, flight := range flights {
		if flight.Duration.TotalMinutes < minDuration {
			minDuration = flight.Duration.TotalMinutes
		}
		if flight.Duration.TotalMinutes > maxDuration {
			maxDuration = flight.Duration.TotalMinutes
		}
	}
	return minDuration, maxDuration
}

func normalizeValue(value float64, min float64, max float64) float64 {
	if max == min {
		return 0
	}

	return (value - min) / (max - min)
}
