package service

import (
	"context"
	"log/slog"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/utils"
)

type ProfileService struct {
	LoyaltyPrograms func() []dto.LoyaltyProgram
	Insights        func() []string
}

func NewProfileService(loyaltyPrograms func() []dto.LoyaltyProgram,
	insights func() []string) *ProfileService {
	return &ProfileService{
		LoyaltyPrograms: loyaltyPrograms,
		Insights:        insights,
	}
}

// Profile returns the traveller's loyalty balances valued in dollars and the
// travel insights shown next to a search.
// Profile godoc
// @Summary      Traveller profile
// @Tags         Travel
// @Success      200      {object}  dto.ProfileResponse
// @Router       /api/v1/travel/profile [get]
func (s *ProfileService) Profile(ctx context.Context) (dto.ProfileResponse, error) {
	programs := s.LoyaltyPrograms()

	var total float64
	for i, program := range programs {
		value := utils.CalculateCashValue(program.Balance, program.CentsPerPoint)
		programs[i].CashValue = dto.Price{
			Amount:    value,
			Currency:  "USD",
			Formatted: utils.FormatUSD(value),
		}
		total += value
	}

	slog.DebugContext(ctx, "profile loaded", slog.Int("loyalty_programs", len(programs)))

	return dto.ProfileResponse{
		LoyaltyPrograms: programs,
		TotalCashValue: dto.Price{
			Amount:    total,
			Currency:  "USD",
			Formatted: utils.FormatUSD(total),
		},
		Insights: s.Insights(),
	}, nil
}
