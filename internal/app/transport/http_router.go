package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/config"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-aggregation-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/travel-search-aggregation-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/travel", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.CORSAllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/search", httptransport.MakeHandlerFunc(
			endpts.AggregatorEndpoint.Search,
			httptransport.DecodeSearchQuery,
			httptransport.ResponseWithBody,
		))

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.AggregatorEndpoint.Search,
			httptransport.DecodeRequest[dto.SearchQuery],
			httptransport.ResponseWithBody,
		))

		router.Get("/profile", httptransport.MakeHandlerFunc(
			endpts.ProfileEndpoint.Profile,
			httptransport.NoRequest,
			httptransport.ResponseWithBody,
		))

		router.Post("/sort", httptransport.MakeHandlerFunc(
			endpts.AggregatorEndpoint.Sort,
			httptransport.DecodeRequest[dto.SortRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
