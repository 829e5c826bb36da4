package dto

import (
	"net/http"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/exception"
)

// ErrInvalidQuery is the only search failure surfaced to callers besides a
// total outage: no fallback can stand in for an uninterpretable query.
var ErrInvalidQuery = exception.ApplicationError{
	Message:    "invalid search query",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidSortRequest = exception.ApplicationError{
	Message:    "invalid sort request",
	StatusCode: http.StatusBadRequest,
}
