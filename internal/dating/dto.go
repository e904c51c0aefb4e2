package dating

// RankedParams are the query parameters of the ranked listing
type RankedParams struct {
	Limit int `validate:"gte=0,lte=100"`
}

// RankedResponse is the browse-all listing
type RankedResponse struct {
	Count       int          `json:"count"`
	Suggestions []Suggestion `json:"suggestions"`
}
