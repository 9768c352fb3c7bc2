package here

// apiResponse is the body of GET /geocode from the HERE Geocoding & Search API.
type apiResponse struct {
	Items []apiItem `json:"items"`
}

// apiItem is one ranked match. Only the first item is used.
type apiItem struct {
	Title    string      `json:"title"`
	Address  apiAddress  `json:"address"`
	Position apiPosition `json:"position"`
}

type apiAddress struct {
	Label string `json:"label"`
}

type apiPosition struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// apiError is the body HERE returns with 4xx/5xx statuses.
type apiError struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Cause  string `json:"cause"`
}
