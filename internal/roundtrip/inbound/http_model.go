package inbound

type RoundtripsResponse struct {
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`
	Metadata       MetadataResponse       `json:"metadata"`
	Routes         []RouteResultResponse  `json:"routes"`
	Combined       []OptionResponse       `json:"combined_ranking,omitempty"`
	Series         []SeriesResponse       `json:"chart_series"`
}

type SearchCriteriaResponse struct {
	Routes    []string `json:"routes"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	MinDays   int      `json:"min_days"`
	MaxDays   int      `json:"max_days"`
	TopN      int      `json:"top_n"`
	Currency  string   `json:"currency"`
}

type MetadataResponse struct {
	MonthsQueried int      `json:"months_queried"`
	MonthsFailed  int      `json:"months_failed"`
	FailedMonths  []string `json:"failed_months,omitempty"`
	SearchTimeMs  int64    `json:"search_time_ms"`
}

type RouteResultResponse struct {
	Route   string           `json:"route"`
	Best    *OptionResponse  `json:"best,omitempty"`
	Options []OptionResponse `json:"options"`
}

type OptionResponse struct {
	Route          string      `json:"route"`
	Total          float64     `json:"total"`
	TotalFormatted string      `json:"total_formatted"`
	Outbound       LegResponse `json:"outbound"`
	Return         LegResponse `json:"return"`
}

type LegResponse struct {
	Date           string  `json:"date"`
	Price          float64 `json:"price"`
	PriceFormatted string  `json:"price_formatted"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
}

type SeriesResponse struct {
	Route  string          `json:"route"`
	Points []PointResponse `json:"points"`
}

type PointResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}
