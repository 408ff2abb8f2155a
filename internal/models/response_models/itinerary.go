package response_models

// Activity is one scheduled stop inside a day.
type Activity struct {
	ID         string   `json:"id"`
	Time       string   `json:"time"`
	Title      string   `json:"title"`
	Location   string   `json:"location,omitempty"`
	Address    string   `json:"address,omitempty"`
	BusinessID string   `json:"business_id,omitempty"`
	Rating     float64  `json:"rating,omitempty"`
	Price      string   `json:"price,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Completed  bool     `json:"completed"`
	SlotType   string   `json:"slot_type"`

	// Walking estimate from the previous placed activity; omitted when either
	// side has no coordinates or the estimate rounds to zero.
	TravelTimeFromPreviousMinutes *int `json:"travel_time_from_previous_minutes,omitempty"`
}

type DayPlan struct {
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

type ItineraryResponse struct {
	Location  string    `json:"location,omitempty"`
	Itinerary []DayPlan `json:"itinerary"`
}
