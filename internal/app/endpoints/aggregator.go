package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
)

type AggregatorService interface {
	Search(ctx context.Context, query dto.SearchQuery) (dto.SearchResponse, error)
	Sort(ctx context.Context, req dto.SortRequest) (dto.SortResponse, error)
}

type AggregatorEndpoint struct {
	Search endpoint.Endpoint
	Sort   endpoint.Endpoint
}

func MakeAggregatorEndpoint(service AggregatorService) AggregatorEndpoint {
	return AggregatorEndpoint{
		Search: makeSearchEndpoint(service),
		Sort:   makeSortEndpoint(service),
	}
}

func makeSearchEndpoint(service AggregatorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchQuery)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.Search(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("aggregator service: %w", err)
		}

		return result, nil
	}
}

func makeSortEndpoint(service AggregatorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SortRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.Sort(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("aggregator service: %w", err)
		}

		return result, nil
	}
}
