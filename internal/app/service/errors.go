package service

import (
	"net/http"

	"github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/exception"
)

var ErrAllSourcesFailed = exception.ApplicationError{
	Message:    "all offer sources failed",
	StatusCode: http.StatusServiceUnavailable,
}
