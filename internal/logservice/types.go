package logservice

// CreateLogRequest is the request body for appending one event.
type CreateLogRequest struct {
	Body struct {
		Stack   string `doc:"frontend or backend"                 example:"backend"          json:"stack"`
		Level   string `doc:"debug, info, warn, error or fatal"   example:"info"             json:"level"`
		Package string `doc:"Emitting layer, e.g. handler or db"  example:"handler"          json:"package"`
		Message string `doc:"Free-form message"                   example:"Short URL created" json:"message"`
	}
}

// CreateLogResponse confirms an appended event.
type CreateLogResponse struct {
	Body struct {
		LogID   string `doc:"Identifier assigned to the event" example:"9b2f1c7e-0c1e-4f65-9a0a-7a3f0f3f8d10" json:"logID"`
		Message string `example:"log created successfully"                                                  json:"message"`
	}
}

// ListLogsResponse returns the stored log lines in append order.
type ListLogsResponse struct {
	Body struct {
		Logs []string `doc:"Formatted log lines" json:"logs"`
	}
}
