package hotelmock

import (
	"context"
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/providerutils"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/sampledata"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/utils"
)

const (
	ProviderName = "HotelMock"

	// ModeStatic serves the sample hotels as they are.
	ModeStatic = "static"
	// ModePoints derives the point price of every hotel from its cash price.
	ModePoints = "points"
)

type Provider struct {
	Name             string
	Mode             string
	PointsMultiplier float64
	Latency          time.Duration
}

func NewProvider(config offerprovider.MockProviderConfig) *Provider {
	mode := config.Mode
	if mode != ModePoints {
		mode = ModeStatic
	}

	return &Provider{
		Name:             ProviderName,
		Mode:             mode,
		PointsMultiplier: config.PointsMultiplier,
		Latency:          config.Latency,
	}
}

// Search will simulate a hotel search with the configured latency.
// The query city is optional and only stamped on the offers.
func (p *Provider) Search(ctx context.Context, query dto.SearchQuery) ([]dto.HotelOffer, error) {
	if err := providerutils.SimulateLatency(ctx, p.Latency); err != nil {
		return nil, err
	}

	hotels := sampledata.Hotels()
	for i := range hotels {
		hotels[i].Provider = p.Name
		hotels[i].City = query.City

		if p.Mode == ModePoints {
			hotels[i].Points = utils.CalculatePoints(hotels[i].Price.Amount, p.PointsMultiplier)
		}
	}

	slog.DebugContext(ctx, "hotel offers generated", slog.String("mode", p.Mode), slog.Int("count", len(hotels)))

	return providerutils.SanitizeHotels(hotels), nil
}
