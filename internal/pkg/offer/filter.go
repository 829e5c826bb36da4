package offer

import (
	"strings"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
)

func FilterFlights(flights []dto.FlightOffer, filterOpts *dto.FilterOption) []dto.FlightOffer {
	results := make([]dto.FlightOffer, 0, len(flights))

	for _, flight := range flights {
		if !matchOffer(flight, filterOpts) {
			continue
		}

		if !matchAirline(flight, filterOpts) {
			continue
		}

		results = append(results, flight)
	}

	return results
}

func FilterHotels(hotels []dto.HotelOffer, filterOpts *dto.FilterOption) []dto.HotelOffer {
	results := make([]dto.HotelOffer, 0, len(hotels))

	for _, hotel := range hotels {
		if !matchOffer(hotel, filterOpts) {
			continue
		}

		if filterOpts != nil && filterOpts.MinRating != nil && hotel.Rating < *filterOpts.MinRating {
			continue
		}

		results = append(results, hotel)
	}

	return results
}

func FilterCars(cars []dto.CarOffer, filterOpts *dto.FilterOption) []dto.CarOffer {
	results := make([]dto.CarOffer, 0, len(cars))

	for _, car := range cars {
		if !matchOffer(car, filterOpts) {
			continue
		}

		if filterOpts != nil && filterOpts.VehicleType != nil &&
			!strings.EqualFold(*filterOpts.VehicleType, car.VehicleType) {
			continue
		}

		results = append(results, car)
	}

	return results
}

// FilterPackages checks the bundle price and confidence, then the airline
// of its flight and the rating of its hotel.
func FilterPackages(packages []dto.PackageOffer, filterOpts *dto.FilterOption) []dto.PackageOffer {
	results := make([]dto.PackageOffer, 0, len(packages))

	for _, pkg := range packages {
		if !matchOffer(pkg, filterOpts) {
			continue
		}

		if !matchAirline(pkg.Flight, filterOpts) {
			continue
		}

		if filterOpts != nil && filterOpts.MinRating != nil && pkg.Hotel.Rating < *filterOpts.MinRating {
			continue
		}

		results = append(results, pkg)
	}

	return results
}

// FilterResult applies the filter to every offer kind. A nil filter keeps
// everything.
func FilterResult(result dto.SearchResult, filterOpts *dto.FilterOption) dto.SearchResult {
	return dto.SearchResult{
		Flights:  FilterFlights(result.Flights, filterOpts),
		Hotels:   FilterHotels(result.Hotels, filterOpts),
		Cars:     FilterCars(result.Cars, filterOpts),
		Packages: FilterPackages(result.Packages, filterOpts),
	}
}

func matchOffer(offer dto.Offer, filterOpts *dto.FilterOption) bool {
	if filterOpts == nil {
		return true
	}

	if filterOpts.MaxPrice != nil && offer.GetPrice() > *filterOpts.MaxPrice {
		return false
	}

	if filterOpts.MinPrice != nil && offer.GetPrice() < *filterOpts.MinPrice {
		return false
	}

	// unscored offers are not judged by confidence
	if filterOpts.MinConfidence != nil && offer.GetConfidence() != dto.NoConfidence &&
		offer.GetConfidence() < *filterOpts.MinConfidence {
		return false
	}

	return true
}

func matchAirline(flight dto.FlightOffer, filterOpts *dto.FilterOption) bool {
	if filterOpts == nil || filterOpts.Airline == nil {
		return true
	}

	return strings.EqualFold(*filterOpts.Airline, flight.Airline)
}
