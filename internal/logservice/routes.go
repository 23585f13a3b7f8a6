package logservice

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the log endpoints.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-log",
		Method:        http.MethodPost,
		Path:          "/log",
		Summary:       "Append a log event",
		Tags:          []string{"Logs"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.CreateLog)

	huma.Register(api, huma.Operation{
		OperationID: "list-logs",
		Method:      http.MethodGet,
		Path:        "/log",
		Summary:     "List log lines",
		Tags:        []string{"Logs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListLogs)
}
