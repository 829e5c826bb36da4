// Package sampledata holds the fixed offers served by the synthetic sources
// and substituted whenever a live source fails. Every call returns a fresh
// copy so callers may reorder or edit the result freely.
package sampledata

import (
	"fmt"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/utils"
)

const (
	ProviderName = "sample"
	Currency     = "USD"
)

type flightRow struct {
	airline    string
	price      float64
	points     int
	duration   string
	departure  string
	arrival    string
	prediction string
	confidence int
}

type hotelRow struct {
	name       string
	price      float64
	points     int
	rating     float64
	amenities  []string
	prediction string
	confidence int
}

type carRow struct {
	company     string
	vehicleType string
	price       float64
	points      int
	prediction  string
	confidence  int
}

var flightRows = []flightRow{
	{"American Airlines", 456, 25000, "6h 15m", "8:30 AM", "11:45 AM", "Prices likely to rise 15% in next 3 days", 87},
	{"Delta", 489, 28000, "6h 30m", "2:15 PM", "5:45 PM", "Good time to book", 92},
	{"JetBlue", 398, 22000, "6h 45m", "6:20 PM", "10:05 PM", "Price may drop 8% in 5 days", 73},
}

var hotelRows = []hotelRow{
	{"Hilton Los Angeles", 189, 40000, 4.2, []string{"Pool", "Gym", "WiFi"}, "Rates stable", 85},
	{"Marriott Downtown", 225, 35000, 4.5, []string{"Spa", "Restaurant", "WiFi"}, "Limited availability - book soon", 94},
	{"Holiday Inn Express", 129, 25000, 4.0, []string{"Breakfast", "Gym", "WiFi"}, "Good value option", 78},
}

var carRows = []carRow{
	{"Hertz", "Economy", 45, 3500, "Standard pricing", 80},
	{"Avis", "Midsize", 62, 4200, "Demand increasing", 76},
	{"Enterprise", "SUV", 89, 6800, "Peak season rates", 88},
}

type loyaltyRow struct {
	name          string
	balance       int
	centsPerPoint float64
}

var loyaltyRows = []loyaltyRow{
	{"Chase Ultimate Rewards", 125000, 1.25},
	{"American Express MR", 89000, 1.8},
	{"American Airlines", 45000, 1.4},
	{"Marriott Bonvoy", 180000, 0.8},
}

var insights = []string{
	"You typically save 23% by booking flights on Tuesday",
	"Your travel pattern suggests you prefer afternoon departures",
	"You could save $340 by using points for this trip",
	"Price for this route drops 12% in the next 2 weeks historically",
}

// sample flights are all on this route
const (
	flightOrigin      = "JFK"
	flightDestination = "LAX"
)

func Flights() []dto.FlightOffer {
	flights := make([]dto.FlightOffer, len(flightRows))
	for i, row := range flightRows {
		departure, arrival := row.departure, row.arrival
		minutes := utils.ConvertDurationToMinutes(row.duration)

		flights[i] = dto.FlightOffer{
			ID:          generateID("flight", i),
			Provider:    ProviderName,
			Airline:     row.airline,
			Route:       flightOrigin + "-" + flightDestination,
			Origin:      flightOrigin,
			Destination: flightDestination,
			Price:       price(row.price),
			Points:      row.points,
			Duration: dto.Duration{
				TotalMinutes: int(minutes),
				Formatted:    utils.ConvertMinutesToDuration(minutes),
			},
			Departure:  &departure,
			Arrival:    &arrival,
			Confidence: intPtr(row.confidence),
			Prediction: row.prediction,
		}
	}

	return flights
}

func Hotels() []dto.HotelOffer {
	hotels := make([]dto.HotelOffer, len(hotelRows))
	for i, row := range hotelRows {
		amenities := make([]string, len(row.amenities))
		copy(amenities, row.amenities)

		hotels[i] = dto.HotelOffer{
			ID:         generateID("hotel", i),
			Provider:   ProviderName,
			Name:       row.name,
			Price:      price(row.price),
			Points:     row.points,
			Rating:     row.rating,
			Amenities:  amenities,
			Confidence: intPtr(row.confidence),
			Prediction: row.prediction,
		}
	}

	return hotels
}

func Cars() []dto.CarOffer {
	cars := make([]dto.CarOffer, len(carRows))
	for i, row := range carRows {
		cars[i] = dto.CarOffer{
			ID:          generateID("car", i),
			Provider:    ProviderName,
			Company:     row.company,
			VehicleType: row.vehicleType,
			Price:       price(row.price),
			Points:      row.points,
			Confidence:  intPtr(row.confidence),
			Prediction:  row.prediction,
		}
	}

	return cars
}

// LoyaltyPrograms returns the sample balances valued in dollars.
func LoyaltyPrograms() []dto.LoyaltyProgram {
	programs := make([]dto.LoyaltyProgram, len(loyaltyRows))
	for i, row := range loyaltyRows {
		programs[i] = dto.LoyaltyProgram{
			Name:          row.name,
			Balance:       row.balance,
			CentsPerPoint: row.centsPerPoint,
			CashValue:     price(utils.CalculateCashValue(row.balance, row.centsPerPoint)),
		}
	}

	return programs
}

func Insights() []string {
	results := make([]string, len(insights))
	copy(results, insights)

	return results
}

func price(amount float64) dto.Price {
	return dto.Price{
		Amount:    amount,
		Currency:  Currency,
		Formatted: utils.FormatUSD(amount),
	}
}

func generateID(kind string, index int) string {
	return fmt.Sprintf("%s_%s_%d", ProviderName, kind, index+1)
}

func intPtr(v int) *int {
	return &v
}
