package providerutils

import (
	"log/slog"
	"math"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
)

const (
	minConfidence = 0
	maxConfidence = 100
	minRating     = 0.0
	maxRating     = 5.0
)

// SanitizeFlights drops flights with an unusable price and clamps scores.
func SanitizeFlights(flights []dto.FlightOffer) []dto.FlightOffer {
	results := make([]dto.FlightOffer, 0, len(flights))

	for _, flight := range flights {
		if !isValidPrice(flight.Price.Amount) {
			slog.Debug("dropping flight with invalid price", "id", flight.ID, "price", flight.Price.Amount)
			continue
		}

		flight.Confidence = clampConfidence(flight.Confidence)
		results = append(results, flight)
	}

	return results
}

// SanitizeHotels drops hotels with an unusable price, clamps confidence and rating.
func SanitizeHotels(hotels []dto.HotelOffer) []dto.HotelOffer {
	results := make([]dto.HotelOffer, 0, len(hotels))

	for _, hotel := range hotels {
		if !isValidPrice(hotel.Price.Amount) {
			slog.Debug("dropping hotel with invalid price", "id", hotel.ID, "price", hotel.Price.Amount)
			continue
		}

		hotel.Confidence = clampConfidence(hotel.Confidence)
		hotel.Rating = math.Min(math.Max(hotel.Rating, minRating), maxRating)
		results = append(results, hotel)
	}

	return results
}

// SanitizeCars drops cars with an unusable price and clamps confidence.
func SanitizeCars(cars []dto.CarOffer) []dto.CarOffer {
	results := make([]dto.CarOffer, 0, len(cars))

	for _, car := range cars {
		if !isValidPrice(car.Price.Amount) {
			slog.Debug("dropping car with invalid price", "id", car.ID, "price", car.Price.Amount)
			continue
		}

		car.Confidence = clampConfidence(car.Confidence)
		results = append(results, car)
	}

	return results
}

func isValidPrice(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}

// clampConfidence returns a new pointer so the caller's offer is not edited in place
func clampConfidence(confidence *int) *int {
	if confidence == nil {
		return nil
	}

	clamped := min(max(*confidence, minConfidence), maxConfidence)
	return &clamped
}
