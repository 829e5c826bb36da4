package dto

// NoConfidence is what GetConfidence reports for an offer without a score.
// It sorts below every real confidence value.
const NoConfidence = -1

// Offer is the common display shape shared by every priced item.
type Offer interface {
	GetPrice() float64
	GetDurationMinutes() int
	GetPoints() int
	GetConfidence() int
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type FlightOffer struct {
	ID          string   `json:"id"`
	Provider    string   `json:"provider"`
	Airline     string   `json:"airline"`
	Route       string   `json:"route"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Price       Price    `json:"price"`
	Points      int      `json:"points"`
	Duration    Duration `json:"duration"`
	Departure   *string  `json:"departure,omitempty"`
	Arrival     *string  `json:"arrival,omitempty"`
	Stops       int      `json:"stops"`
	Confidence  *int     `json:"confidence,omitempty"`
	Prediction  string   `json:"prediction,omitempty"`
}

func (f FlightOffer) GetPrice() float64       { return f.Price.Amount }
func (f FlightOffer) GetDurationMinutes() int { return f.Duration.TotalMinutes }
func (f FlightOffer) GetPoints() int          { return f.Points }
func (f FlightOffer) GetConfidence() int      { return confidenceOf(f.Confidence) }

type HotelOffer struct {
	ID         string   `json:"id"`
	Provider   string   `json:"provider"`
	Name       string   `json:"name"`
	City       string   `json:"city,omitempty"`
	Price      Price    `json:"price"`
	Points     int      `json:"points"`
	Rating     float64  `json:"rating"`
	Amenities  []string `json:"amenities,omitempty"`
	Confidence *int     `json:"confidence,omitempty"`
	Prediction string   `json:"prediction,omitempty"`
}

func (h HotelOffer) GetPrice() float64       { return h.Price.Amount }
func (h HotelOffer) GetDurationMinutes() int { return 0 }
func (h HotelOffer) GetPoints() int          { return h.Points }
func (h HotelOffer) GetConfidence() int      { return confidenceOf(h.Confidence) }

type CarOffer struct {
	ID          string `json:"id"`
	Provider    string `json:"provider"`
	Company     string `json:"company"`
	VehicleType string `json:"vehicle_type"`
	Price       Price  `json:"price"`
	Points      int    `json:"points"`
	Confidence  *int   `json:"confidence,omitempty"`
	Prediction  string `json:"prediction,omitempty"`
}

func (c CarOffer) GetPrice() float64       { return c.Price.Amount }
func (c CarOffer) GetDurationMinutes() int { return 0 }
func (c CarOffer) GetPoints() int          { return c.Points }
func (c CarOffer) GetConfidence() int      { return confidenceOf(c.Confidence) }

// PackageOffer bundles a flight with a hotel stay.
type PackageOffer struct {
	ID             string      `json:"id"`
	Flight         FlightOffer `json:"flight"`
	Hotel          HotelOffer  `json:"hotel"`
	Price          Price       `json:"price"`
	Points         int         `json:"points"`
	SavingsPercent int         `json:"savings_percent"`
	Confidence     *int        `json:"confidence,omitempty"`
	Prediction     string      `json:"prediction,omitempty"`
}

func (p PackageOffer) GetPrice() float64       { return p.Price.Amount }
func (p PackageOffer) GetDurationMinutes() int { return p.Flight.GetDurationMinutes() }
func (p PackageOffer) GetPoints() int          { return p.Points }
func (p PackageOffer) GetConfidence() int      { return confidenceOf(p.Confidence) }

func confidenceOf(c *int) int {
	if c == nil {
		return NoConfidence
	}

	return *c
}
