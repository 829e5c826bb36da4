package skypicker

type SearchFlightResponse struct {
	Currency string   `json:"currency"`
	Data     []Flight `json:"data"`
}

type Flight struct {
	ID          string    `json:"id"`
	FlyFrom     string    `json:"flyFrom"`
	FlyTo       string    `json:"flyTo"`
	CityFrom    string    `json:"cityFrom"`
	CityTo      string    `json:"cityTo"`
	Airlines    []string  `json:"airlines"`
	Price       float64   `json:"price"`
	FlyDuration string    `json:"fly_duration"`
	DTime       int64     `json:"dTime"`
	ATime       int64     `json:"aTime"`
	Route       []Segment `json:"route"`
}

type Segment struct {
	FlyFrom string `json:"flyFrom"`
	FlyTo   string `json:"flyTo"`
	Airline string `json:"airline"`
}
