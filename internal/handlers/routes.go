package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-short-url",
		Method:        http.MethodPost,
		Path:          "/shorten",
		Summary:       "Create short URL",
		Description:   "Creates a short URL from an original URL and an alphanumeric suffix.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, urlHandler.CreateShortURL)

	huma.Register(api, huma.Operation{
		OperationID: "get-short-url-statistics",
		Method:      http.MethodGet,
		Path:        "/shorturls/{shortcode}",
		Summary:     "Get short URL statistics",
		Description: "Returns the original URL, creation and expiration dates, and every registered click.",
		Tags:        []string{"URLs"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, urlHandler.GetStatistics)

	huma.Register(api, huma.Operation{
		OperationID:   "register-click",
		Method:        http.MethodPost,
		Path:          "/click/{shortcode}",
		Summary:       "Register a click",
		Description:   "Records a click with the request's Referer header.",
		Tags:          []string{"Clicks"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, urlHandler.RegisterClick)
}
