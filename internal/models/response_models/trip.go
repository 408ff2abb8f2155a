package response_models

type TripResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date,omitempty"`
	DayCount  int      `json:"day_count"`
	Interests []string `json:"interests,omitempty"`
}

type TripDetailResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date,omitempty"`
	DayCount  int      `json:"day_count"`
	Interests []string `json:"interests,omitempty"`

	TotalActivities int       `json:"total_activities"`
	Days            []DayPlan `json:"days"`
}
