package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/utils"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DecodeSearchQuery reads a search from the URL query. The date must be a
// structured calendar date (2006-01-02), so no date_format is taken here.
func DecodeSearchQuery(_ context.Context, r *http.Request) (interface{}, error) {
	var (
		params = r.URL.Query()
		query  = dto.SearchQuery{DateFormat: string(utils.DateISO)}
		date   openapi_types.Date
	)

	bindings := []struct {
		name     string
		required bool
		dest     interface{}
	}{
		{"origin", true, &query.Origin},
		{"destination", true, &query.Destination},
		{"date", true, &date},
		{"city", false, &query.City},
		{"sort_strategy", false, &query.SortStrategy},
	}

	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, b.required, b.name, params, b.dest); err != nil {
			return nil, dto.ErrInvalidQuery.WithMessage(fmt.Sprintf("invalid %s parameter: %v", b.name, err))
		}
	}

	// a missing date binds to the zero value without an error
	if !params.Has("date") || date.Time.IsZero() {
		return nil, dto.ErrInvalidQuery.WithMessage("invalid date parameter: required")
	}

	query.Date = date.String()

	if err := query.Bind(r); err != nil {
		return nil, err
	}

	return &query, nil
}
