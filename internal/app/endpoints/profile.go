package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
)

type ProfileService interface {
	Profile(ctx context.Context) (dto.ProfileResponse, error)
}

type ProfileEndpoint struct {
	Profile endpoint.Endpoint
}

func MakeProfileEndpoint(service ProfileService) ProfileEndpoint {
	return ProfileEndpoint{
		Profile: makeProfileEndpoint(service),
	}
}

func makeProfileEndpoint(service ProfileService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		profile, err := service.Profile(ctx)
		if err != nil {
			return nil, fmt.Errorf("profile service: %w", err)
		}

		return profile, nil
	}
}
