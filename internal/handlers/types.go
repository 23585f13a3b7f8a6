package handlers

import "time"

// CreateShortURLRequest is the request body for creating a short URL.
// Fields are optional at the schema level so that the shortener reports
// missing values with its own 400 errors.
type CreateShortURLRequest struct {
	Body struct {
		OriginalURL  string `doc:"The absolute http(s) URL to shorten"           example:"https://example.com/very/long/path" json:"original_url,omitempty"`
		Suffix       string `doc:"Alphanumeric suffix identifying the short URL" example:"abc123"                             json:"suffix,omitempty"`
		ValidateTime int    `default:"30"                                        doc:"Validity in minutes"                    example:"30"          json:"validate_time,omitempty"`
	}
}

// CreateShortURLResponse is the response for a successfully created short URL.
type CreateShortURLResponse struct {
	Body struct {
		ShortURL       string    `doc:"The short code"           example:"https://example.com/very/long/path/abc123" json:"short_url"`
		ExpirationTime time.Time `doc:"When the short URL expires"                                                 json:"expiration_time"`
	}
}

// ShortCodeRequest addresses a short URL by its code or any suffix of it.
type ShortCodeRequest struct {
	ShortCode string `doc:"The short code suffix" example:"abc123" path:"shortcode"`
}

// ClickDetail is one click in a statistics response.
type ClickDetail struct {
	Timestamp time.Time `doc:"When the click was registered"   json:"timestamp"`
	Referrer  string    `doc:"Referer header or \"unknown\""  example:"https://news.example" json:"referrer"`
	Location  string    `doc:"Always \"unknown\""             example:"unknown"              json:"location"`
}

// StatisticsResponse is the response for the statistics endpoint.
type StatisticsResponse struct {
	Body struct {
		OriginalURL    string        `doc:"The original URL"          example:"https://example.com/very/long/path" json:"original_url"`
		CreationDate   time.Time     `doc:"When the short URL was created"                                         json:"creation_date"`
		ExpirationDate time.Time     `doc:"When the short URL expires"                                             json:"expiration_date"`
		TotalClicks    int           `doc:"Number of registered clicks" example:"2"                                json:"total_clicks"`
		ClickDetails   []ClickDetail `doc:"Clicks in registration order"                                           json:"click_details"`
	}
}

// RegisterClickRequest registers a click on a short URL.
type RegisterClickRequest struct {
	ShortCode string `doc:"The short code suffix"              example:"abc123"               path:"shortcode"`
	Referer   string `doc:"Page the click originated from" header:"Referer" required:"false"`
}

// RegisterClickResponse confirms a registered click.
type RegisterClickResponse struct {
	Body struct {
		Message string `example:"Click registered successfully" json:"message"`
	}
}
