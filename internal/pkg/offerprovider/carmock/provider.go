package carmock

import (
	"context"
	"time"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/providerutils"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/offerprovider/sampledata"
)

const ProviderName = "CarMock"

type Provider struct {
	Name    string
	Latency time.Duration
}

func NewProvider(config offerprovider.MockProviderConfig) *Provider {
	return &Provider{
		Name:    ProviderName,
		Latency: config.Latency,
	}
}

// Search returns the sample rental cars, the query is ignored.
func (p *Provider) Search(ctx context.Context, _ dto.SearchQuery) ([]dto.CarOffer, error) {
	if err := providerutils.SimulateLatency(ctx, p.Latency); err != nil {
		return nil, err
	}

	cars := sampledata.Cars()
	for i := range cars {
		cars[i].Provider = p.Name
	}

	return providerutils.SanitizeCars(cars), nil
}
