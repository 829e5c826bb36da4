package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/utils"
)

type SortStrategy string

const (
	SortBestDeal      SortStrategy = "best-deal"
	SortFastest       SortStrategy = "fastest"
	SortMostPoints    SortStrategy = "most-points"
	SortAIRecommended SortStrategy = "ai-recommended"
)

var AllowedSortStrategy = map[SortStrategy]bool{
	SortBestDeal:      true,
	SortFastest:       true,
	SortMostPoints:    true,
	SortAIRecommended: true,
}

// SearchQuery is the input of a single search. Date is interpreted with the
// layout named by DateFormat, see utils.DateConvention.
type SearchQuery struct {
	Origin       string        `json:"origin" validate:"required,iata"`
	Destination  string        `json:"destination" validate:"required,iata,nefield=Origin"`
	Date         string        `json:"date" validate:"required"`
	DateFormat   string        `json:"date_format" validate:"required,oneof=iso us"`
	City         string        `json:"city,omitempty" validate:"omitempty,max=100"`
	SortStrategy SortStrategy  `json:"sort_strategy,omitempty"`
	FilterOption *FilterOption `json:"filter_option,omitempty"`
}

// Normalized returns a copy with trimmed fields and upper-cased airport codes.
func (s SearchQuery) Normalized() SearchQuery {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.Date = strings.TrimSpace(s.Date)
	s.DateFormat = strings.ToLower(strings.TrimSpace(s.DateFormat))
	s.City = strings.TrimSpace(s.City)

	return s
}

// Convention returns the declared date convention.
func (s SearchQuery) Convention() utils.DateConvention {
	return utils.DateConvention(s.DateFormat)
}

func (s *SearchQuery) Bind(r *http.Request) error {
	*s = s.Normalized()

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchQuery) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return ErrInvalidQuery.WithMessage(err.Error())
	}

	if _, err := utils.ParseDate(s.Date, s.Convention()); err != nil {
		return ErrInvalidQuery.WithMessage(
			fmt.Sprintf("date %s does not match date_format %s", s.Date, s.DateFormat))
	}

	if s.SortStrategy != "" && !AllowedSortStrategy[s.SortStrategy] {
		return ErrInvalidQuery.WithMessage(fmt.Sprintf("Invalid sort strategy %s", s.SortStrategy))
	}

	if s.FilterOption != nil {
		if err := s.FilterOption.Validate(); err != nil {
			return ErrInvalidQuery.WithMessage(err.Error())
		}
	}

	return nil
}

type FilterOption struct {
	MinPrice      *float64 `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice      *float64 `json:"max_price,omitempty" validate:"omitempty,gt=0"`
	MinConfidence *int     `json:"min_confidence,omitempty" validate:"omitempty,gte=0,lte=100"`
	MinRating     *float64 `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Airline       *string  `json:"airline,omitempty"`
	VehicleType   *string  `json:"vehicle_type,omitempty"`
}

func (f *FilterOption) Validate() error {
	if err := ValidateSingleError(f); err != nil {
		return err
	}

	if f.MinPrice != nil && f.MaxPrice != nil && *f.MaxPrice <= *f.MinPrice {
		return fmt.Errorf("max_price must be greater than min_price")
	}

	return nil
}

type Metadata struct {
	SourcesQueried   int      `json:"sources_queried"`
	SourcesSucceeded int      `json:"sources_succeeded"`
	SourcesFailed    int      `json:"sources_failed"`
	FallbackSources  []string `json:"fallback_sources"`
	TotalResults     int      `json:"total_results"`
	SearchTimeMs     int      `json:"search_time_ms"`
}

// SearchResult is produced fresh for every query and never shared.
type SearchResult struct {
	Flights  []FlightOffer  `json:"flights"`
	Hotels   []HotelOffer   `json:"hotels"`
	Cars     []CarOffer     `json:"cars"`
	Packages []PackageOffer `json:"packages"`
}

func (r SearchResult) Len() int {
	return len(r.Flights) + len(r.Hotels) + len(r.Cars) + len(r.Packages)
}

// SearchResponse is the response struct for the search endpoint
type SearchResponse struct {
	Query    SearchQuery  `json:"query"`
	Metadata Metadata     `json:"metadata"`
	Result   SearchResult `json:"result"`
}

// SortRequest reorders a result the caller already holds.
type SortRequest struct {
	Strategy SortStrategy `json:"strategy" validate:"required"`
	Result   SearchResult `json:"result"`
}

func (s *SortRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SortRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return ErrInvalidSortRequest.WithMessage(err.Error())
	}

	if !AllowedSortStrategy[s.Strategy] {
		return ErrInvalidSortRequest.WithMessage(fmt.Sprintf("Invalid sort strategy %s", s.Strategy))
	}

	return nil
}

type SortResponse struct {
	Strategy SortStrategy `json:"strategy"`
	Result   SearchResult `json:"result"`
}
