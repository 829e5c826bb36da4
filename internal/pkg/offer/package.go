package offer

import (
	"fmt"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/utils"
)

// PackageSavingsPercent is the advertised discount of a bundle against
// booking the flight and the hotel separately.
const PackageSavingsPercent = 13

// BuildPackages pairs every flight with a hotel, cycling through the hotels
// when there are more flights. No hotels means no packages.
func BuildPackages(flights []dto.FlightOffer, hotels []dto.HotelOffer) []dto.PackageOffer {
	if len(hotels) == 0 {
		return []dto.PackageOffer{}
	}

	packages := make([]dto.PackageOffer, len(flights))
	for i, flight := range flights {
		hotel := hotels[i%len(hotels)]
		amount := flight.Price.Amount + hotel.Price.Amount

		packages[i] = dto.PackageOffer{
			ID:     fmt.Sprintf("package_%s_%s", flight.ID, hotel.ID),
			Flight: flight,
			Hotel:  hotel,
			Price: dto.Price{
				Amount:    amount,
				Currency:  firstCurrency(flight.Price.Currency, hotel.Price.Currency),
				Formatted: utils.FormatUSD(amount),
			},
			Points:         flight.Points + hotel.Points,
			SavingsPercent: PackageSavingsPercent,
			Confidence:     flight.Confidence,
			Prediction:     flight.Prediction,
		}
	}

	return packages
}

func firstCurrency(currencies ...string) string {
	for _, c := range currencies {
		if c != "" {
			return c
		}
	}

	return ""
}
