package providerutils

import (
	"net/http"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/exception"
)

// unreachable host, connection reset, timeout
var ErrNetworkFailure = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider unreachable",
}

// non-success HTTP status
var ErrProtocolFailure = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider returned non-success status",
}

// body does not match the expected JSON shape
var ErrMalformedResponse = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider returned malformed response",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

// a live source that answers with an empty list is treated as unavailable
var ErrNoOffersFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "provider returned no offers",
}
