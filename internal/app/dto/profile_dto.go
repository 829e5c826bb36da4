package dto

// LoyaltyProgram is a points balance held by the traveller. CentsPerPoint
// values one point in US cents.
type LoyaltyProgram struct {
	Name          string  `json:"name"`
	Balance       int     `json:"balance"`
	CentsPerPoint float64 `json:"cents_per_point"`
	CashValue     Price   `json:"cash_value"`
}

// ProfileResponse is the response struct for the profile endpoint
type ProfileResponse struct {
	LoyaltyPrograms []LoyaltyProgram `json:"loyalty_programs"`
	TotalCashValue  Price            `json:"total_cash_value"`
	Insights        []string         `json:"insights"`
}
